package entities

import "strings"

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

func (t MediaType) String() string {
	return string(t)
}

// MediaBlobKind классифицирует blob по префиксу MIME-типа.
// Всё, что не video/*, считается фото.
func MediaBlobKind(mime string) MediaType {
	if strings.HasPrefix(mime, "video/") {
		return MediaTypeVideo
	}
	return MediaTypePhoto
}

// MediaBlob - сырые байты снятого фото/видео вместе с исходным именем файла
// (нужно для расширения в ключе хранилища) и MIME-типом.
type MediaBlob struct {
	Name string
	MIME string
	Data []byte
}

// CapturedMedia - единственный снятый blob текущей сессии.
// Жизненным циклом владеет capture.Buffer.
type CapturedMedia struct {
	Blob MediaBlob
	Kind MediaType
}
