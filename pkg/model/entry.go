package model

// Entry is one row of a shop-floor schedule as read off the schedule images.
// All values are kept as transcribed; nothing is parsed or checked.
type Entry struct {
	ZoneCode        string `csv:"zone_code" yaml:"zoneCode" json:"zoneCode"`
	Week            int    `csv:"week" yaml:"week" json:"week"`
	Batch           string `csv:"batch" yaml:"batch" json:"batch"`
	Date            string `csv:"date" yaml:"date" json:"date"`
	TimeSlot        string `csv:"time_slot" yaml:"timeSlot" json:"timeSlot"`
	EquipmentNumber string `csv:"equipment" yaml:"equipmentNumber" json:"equipmentNumber"`
	ORNumber        string `csv:"or_number" yaml:"orNumber" json:"orNumber"`
	Deadline        string `csv:"deadline" yaml:"deadline" json:"deadline"`
}

/* ExampleEntry returns the entry printed by the CLI banner. */
func ExampleEntry() Entry {
	return Entry{
		ZoneCode:        "MTR-01",
		Week:            45,
		Batch:           "A",
		Date:            "2024-11-02",
		TimeSlot:        "SLOT_2300",
		EquipmentNumber: "HOK-E25",
		ORNumber:        "5000355448",
		Deadline:        "16-Nov",
	}
}
