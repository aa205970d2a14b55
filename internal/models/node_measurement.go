package models

import "time"

const (
	NodeStatusSmaller = "smaller"
	NodeStatusSame    = "same"
	NodeStatusLarger  = "larger"
)

// LymphNodeMeasurement records the four palpable node sizes in cm for one
// day. One row per user and date, merged by overwrite on conflict.
type LymphNodeMeasurement struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_node_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_node_user_date"`
	CreatedAt time.Time
	Source    string    `gorm:"not null;default:home"`

	MandibularLeft  *float64
	MandibularRight *float64
	PoplitealLeft   *float64
	PoplitealRight  *float64

	Status string `gorm:"not null;default:''"`
	Notes  string
}
