package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rhyrak/schedule-extractor/internal/csvio"
	"github.com/rhyrak/schedule-extractor/internal/formatter"
	"github.com/rhyrak/schedule-extractor/pkg/model"
)

type handler struct {
	formatter formatter.Formatter
	comma     rune
	logger    zerolog.Logger
}

// formatterFor applies the ?escape= query override. It answers 400 and
// returns false when the value is not a boolean.
func (h *handler) formatterFor(ctx *gin.Context) (formatter.Formatter, bool) {
	f := h.formatter
	if v, ok := ctx.GetQuery("escape"); ok {
		escape, err := strconv.ParseBool(v)
		if err != nil {
			ctx.String(http.StatusBadRequest, "escape must be a boolean, got %q", v)
			return f, false
		}
		f.Escape = escape
	}
	return f, true
}

func (h *handler) handleGetExample(ctx *gin.Context) {
	f, ok := h.formatterFor(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"line": f.Format(model.ExampleEntry()),
	})
}

// handlePostEntries accepts a single JSON entry or an array of entries.
func (h *handler) handlePostEntries(ctx *gin.Context) {
	f, ok := h.formatterFor(ctx)
	if !ok {
		return
	}

	body, err := ctx.GetRawData()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	var entries []*model.Entry
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &entries)
	} else {
		var e model.Entry
		err = json.Unmarshal(trimmed, &e)
		entries = []*model.Entry{&e}
	}
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Debug().Int("entries", len(entries)).Msg("formatting entries")
	ctx.JSON(http.StatusOK, gin.H{
		"lines": f.FormatAll(entries),
	})
}

func (h *handler) handlePostEntriesCSV(ctx *gin.Context) {
	f, ok := h.formatterFor(ctx)
	if !ok {
		return
	}

	header, err := ctx.FormFile("entries")
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	comma := h.comma
	if d := ctx.PostForm("delimiter"); d != "" {
		if utf8.RuneCountInString(d) != 1 {
			ctx.String(http.StatusBadRequest, "delimiter must be a single character")
			return
		}
		comma, _ = utf8.DecodeRuneInString(d)
	}

	file, err := header.Open()
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	defer file.Close()

	entries, err := csvio.ReadEntries(file, comma)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info().Str("file", header.Filename).Int("entries", len(entries)).Msg("converted sheet")
	ctx.JSON(http.StatusOK, gin.H{
		"lines": f.FormatAll(entries),
	})
}
