package restapi

import (
	"context"
	"net/http"
	"net/url"
	"newsroom/pkg/domain"

	"github.com/go-faster/errors"
)

func (cl *Client) PresignedURL(ctx context.Context, extension string) (*domain.PresignedUpload, error) {
	var upload domain.PresignedUpload
	err := cl.do(ctx, call{
		op:     "presigned_url",
		method: http.MethodGet,
		path:   "/presigned-url",
		query:  url.Values{"extension": []string{extension}},
	}, func(body []byte) error {
		if err := decodeJSON(&upload)(body); err != nil {
			return err
		}
		if upload.URL == "" {
			return errors.New("response has no url")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &upload, nil
}
