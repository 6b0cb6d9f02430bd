package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Passenger struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	PassportNo string `json:"passport_no,omitempty"`
}

// PassengerList is stored as a JSON column.
type PassengerList []Passenger

func (l PassengerList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *PassengerList) Scan(v any) error {
	switch data := v.(type) {
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported passenger list source")
}

type CruiseBooking struct {
	ID            uint64        `gorm:"column:id;primaryKey"`
	PaymentID     uint64        `gorm:"column:payment_id;uniqueIndex"`
	CabinType     string        `gorm:"column:cabin_type;size:32"`
	DepartureDate time.Time     `gorm:"column:departure_date"`
	Passengers    PassengerList `gorm:"column:passengers;type:json"`
	CreatedAt     time.Time     `gorm:"column:created_at"`
	UpdatedAt     time.Time     `gorm:"column:updated_at"`
}

func (CruiseBooking) TableName() string { return "cruise_bookings" }

type MealItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// MealItemList is stored as a JSON column.
type MealItemList []MealItem

func (l MealItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *MealItemList) Scan(v any) error {
	switch data := v.(type) {
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported meal item list source")
}

type MealOrder struct {
	ID              uint64       `gorm:"column:id;primaryKey"`
	PaymentID       uint64       `gorm:"column:payment_id;uniqueIndex"`
	Items           MealItemList `gorm:"column:items;type:json"`
	DeliveryAddress string       `gorm:"column:delivery_address;size:255"`
	CreatedAt       time.Time    `gorm:"column:created_at"`
	UpdatedAt       time.Time    `gorm:"column:updated_at"`
}

func (MealOrder) TableName() string { return "meal_orders" }
