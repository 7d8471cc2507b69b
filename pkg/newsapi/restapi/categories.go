package restapi

import (
	"context"
	"net/http"
	"newsroom/pkg/domain"
	"strconv"
)

func (cl *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	err := cl.do(ctx, call{
		op:     "categories",
		method: http.MethodGet,
		path:   "/api/Categories",
	}, decodeJSON(&categories))
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (cl *Client) Category(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	var category domain.Category
	err := cl.do(ctx, call{
		op:     "category",
		method: http.MethodGet,
		path:   "/api/Categories/" + strconv.FormatInt(int64(id), 10),
	}, decodeJSON(&category))
	if err != nil {
		return nil, err
	}

	return &category, nil
}
