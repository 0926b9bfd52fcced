package model

import "time"

const TableNameWorld = "worlds"

// World mapped from table <worlds>. Options, Cells and Stats hold the
// JSONB columns as raw bytes; encoding lives in the repo layer.
type World struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Width     int32     `gorm:"column:width;not null" json:"width"`
	Height    int32     `gorm:"column:height;not null" json:"height"`
	Wrap      bool      `gorm:"column:wrap;not null" json:"wrap"`
	Seed      int64     `gorm:"column:seed;not null" json:"seed"`
	Options   []byte    `gorm:"column:options;type:jsonb" json:"options"`
	Cells     []byte    `gorm:"column:cells;type:jsonb" json:"cells"`
	Stats     []byte    `gorm:"column:stats;type:jsonb" json:"stats"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName World's table name
func (*World) TableName() string {
	return TableNameWorld
}
