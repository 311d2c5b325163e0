package storage

import "time"

type Profile struct {
	ID          string
	DisplayName string
	AvatarGlyph string
	CreatedAt   time.Time
	Active      bool
}

type Entry struct {
	ProfileID    string
	DayKey       string
	Clock        string
	Mood         int
	Energy       int
	Sleep        int
	Stress       int
	Productivity int
	Social       int
	Notes        string
}
