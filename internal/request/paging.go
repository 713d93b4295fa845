package request

import (
	"github.com/tessro/gplay/internal/model"
	"github.com/tessro/gplay/internal/wire"
)

const (
	fieldNextPageToken = "nextPageToken"
	fieldMaxResults    = "maxResults"
)

// UnsetMaxResults leaves the page size to the server.
const UnsetMaxResults = -1

// PagingCursor carries the continuation token and page size of a paged request.
type PagingCursor struct {
	NextPageToken model.Optional[string]
	MaxResults    model.Optional[int]
}

// NewPagingCursor returns a cursor for the given token and page size.
// An empty token or a negative maxResults leaves that field unset.
func NewPagingCursor(nextPageToken string, maxResults int) PagingCursor {
	var p PagingCursor
	if nextPageToken != "" {
		p.NextPageToken = model.Some(nextPageToken)
	}
	if maxResults >= 0 {
		p.MaxResults = model.Some(maxResults)
	}
	return p
}

// IsFirstPage returns true if no continuation token is set.
func (p PagingCursor) IsFirstPage() bool {
	return !p.NextPageToken.Present
}

func (p PagingCursor) fields() []wire.Field {
	return []wire.Field{
		{Name: fieldNextPageToken, Value: p.NextPageToken.Value, Omit: !p.NextPageToken.Present},
		{Name: fieldMaxResults, Value: p.MaxResults.Value, Omit: !p.MaxResults.Present},
	}
}

func (p *PagingCursor) decode(obj wire.Object) error {
	var cursor PagingCursor
	if obj.Has(fieldNextPageToken) {
		var token string
		if err := obj.String(fieldNextPageToken, &token); err != nil {
			return err
		}
		cursor.NextPageToken = model.Some(token)
	}
	if obj.Has(fieldMaxResults) {
		var size int
		if err := obj.Int(fieldMaxResults, &size); err != nil {
			return err
		}
		cursor.MaxResults = model.Some(size)
	}
	*p = cursor
	return nil
}
