package songs

import (
	"github.com/melodicname/api/internal/platform/timeutil"
	songsvc "github.com/melodicname/api/internal/service/songrequest"
)

// Song represents a song request response.
type Song struct {
	ID              string        `json:"id"                        doc:"Request identifier"             example:"4c2f7a6e-1b9d-4d55-9a3e-5f0c2b7d8e11"`
	ArtistName      string        `json:"artistName"                doc:"Name of the requester"          example:"John"`
	Recipient       string        `json:"recipient"                 doc:"Who the song is for"            example:"Jane"`
	Genre           string        `json:"genre"                     doc:"Selected genre"                 example:"Pop"`
	SongName        string        `json:"songName"                  doc:"Suggested song name"            example:"Our Summer"`
	Whatsapp        string        `json:"whatsapp"                  doc:"WhatsApp contact number"        example:"+358401234567"`
	Email           string        `json:"email"                     doc:"Contact email"                  example:"john@example.com"`
	PhotoURL        string        `json:"photoUrl,omitempty"        doc:"Public address of the photo"    example:"https://storage.googleapis.com/song-photos/1712345678901.jpg"`
	AdditionalNotes string        `json:"additionalNotes,omitempty" doc:"Free-form notes"`
	Status          string        `json:"status"                    doc:"Request status"                 example:"pending" enum:"pending,completed"`
	CreatedAt       timeutil.Time `json:"createdAt"                 doc:"Submission timestamp"           example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt       timeutil.Time `json:"updatedAt"                 doc:"Last update timestamp"          example:"2024-01-15T10:30:00.000Z"`
}

// ChangeEvent is one change-feed notification. Clients re-fetch the song
// list and profile on any event instead of applying deltas.
type ChangeEvent struct {
	Type      string `json:"type"      doc:"Change kind"              enum:"added,modified,removed" example:"added"`
	RequestID string `json:"requestId" doc:"Affected request"         example:"4c2f7a6e-1b9d-4d55-9a3e-5f0c2b7d8e11"`
}

func toHTTPSong(r *songsvc.SongRequest) Song {
	return Song{
		ID:              r.ID,
		ArtistName:      r.ArtistName,
		Recipient:       r.Recipient,
		Genre:           r.Genre,
		SongName:        r.SongName,
		Whatsapp:        r.Whatsapp,
		Email:           r.Email,
		PhotoURL:        r.PhotoURL,
		AdditionalNotes: r.AdditionalNotes,
		Status:          string(r.Status),
		CreatedAt:       timeutil.Time{Time: r.CreatedAt},
		UpdatedAt:       timeutil.Time{Time: r.UpdatedAt},
	}
}
