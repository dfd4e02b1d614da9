package models

// Specialist is a barber profile with a fixed weekly working pattern.
// Specialist records are reference data owned by the catalog seeder; the
// API only ever reads them.
type Specialist struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Img         string `bson:"img" json:"img"`         // relative image path, served under /img
	ServiceIDs  []int  `bson:"service" json:"service"` // ids of the services this specialist offers
	WorkingDays []int  `bson:"days" json:"days"`       // weekdays worked, 0 = Sunday .. 6 = Saturday
}

// SpecialistSummary is the projection returned by service-filtered listings.
type SpecialistSummary struct {
	ID   int    `bson:"id" json:"id"`
	Img  string `bson:"img" json:"img"`
	Name string `bson:"name" json:"name"`
}
