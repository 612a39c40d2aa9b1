package artwork

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/model"
)

// Embed writes title and artist tags to the MP3 at item.FilePath and, when
// cover bytes are present, attaches them as the front cover picture. The
// engine already embeds a thumbnail during transcode; this pass covers
// sources whose native artwork gets lost on the way.
func Embed(item model.MediaItem, cover []byte) error {
	tag, err := id3v2.Open(item.FilePath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3 tag: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(3)
	tag.SetTitle(item.Title)
	tag.SetArtist(item.Performer)

	if len(cover) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Picture:     cover,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save id3 tag: %w", err)
	}
	return nil
}
