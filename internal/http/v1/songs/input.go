package songs

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/melodicname/api/internal/platform/pagination"
)

// SongForm carries the multipart submission fields.
type SongForm struct {
	ArtistName      string        `form:"artistName"      doc:"Name of the requester"      example:"John"`
	Recipient       string        `form:"recipient"       doc:"Who the song is for"        example:"Jane"`
	Genre           string        `form:"genre"           doc:"Genre from the fixed set"   example:"Pop"`
	SongName        string        `form:"songName"        doc:"Suggested song name"        example:"Our Summer"`
	Whatsapp        string        `form:"whatsapp"        doc:"WhatsApp contact number"    example:"+358401234567"`
	Email           string        `form:"email"           doc:"Contact email"              example:"john@example.com"`
	AdditionalNotes string        `form:"additionalNotes" doc:"Free-form notes (optional)"`
	Photo           huma.FormFile `form:"photo"           contentType:"image/jpeg,image/png,image/gif,image/webp" doc:"Photo (optional)"`
}

// SongSubmitInput for POST /songs (multipart/form-data)
type SongSubmitInput struct {
	RawBody huma.MultipartFormFiles[SongForm]
}

// SongsListInput for GET /songs
type SongsListInput struct {
	pagination.Params
}

// SongReceivedInput for POST /songs/{id}/received
type SongReceivedInput struct {
	ID string `path:"id" doc:"Request identifier" example:"4c2f7a6e-1b9d-4d55-9a3e-5f0c2b7d8e11"`
}
