package store

import "time"

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// User mirrors a user entry in the persisted document. The password hash is
// part of the document and must never be serialized by presentation layers.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Birthdate    string `json:"birthdate"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	AccountType  string `json:"accountType"`
}

// Proposal is a shipment-request record. Origin and destination are always
// present together once a record exists; the identifier is immutable.
type Proposal struct {
	ID           int64     `json:"id"`
	RequesterID  int64     `json:"requesterId"`
	From         GeoPoint  `json:"fromLocation"`
	To           GeoPoint  `json:"toLocation"`
	Price        float64   `json:"price"`
	Weight       float64   `json:"weight"`
	Volume       float64   `json:"volume"`
	ManPower     int       `json:"manPower"`
	Fragile      bool      `json:"fragile"`
	Cooling      bool      `json:"coolingRequired"`
	RideAlong    bool      `json:"rideAlong"`
	MoveDateTime string    `json:"moveDateTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Offer references a proposal that existed when the offer was created.
type Offer struct {
	ID         int64     `json:"id"`
	ContractID int64     `json:"contractId"`
	DriverID   int64     `json:"driverId"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Snapshot is the whole persisted document. A nil collection means the
// document is missing that collection, which is distinct from a present but
// empty one.
type Snapshot struct {
	Users     []User     `json:"users"`
	Proposals []Proposal `json:"proposals"`
	Offers    []Offer    `json:"offers"`
}

// NewSnapshot returns the empty-collections default written on first run.
func NewSnapshot() Snapshot {
	return Snapshot{
		Users:     []User{},
		Proposals: []Proposal{},
		Offers:    []Offer{},
	}
}
