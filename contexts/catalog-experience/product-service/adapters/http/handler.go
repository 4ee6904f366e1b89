package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"showcase/contexts/catalog-experience/product-service/application"
	"showcase/contexts/catalog-experience/product-service/ports"
	httptransport "showcase/contexts/catalog-experience/product-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListProductsHandler(ctx context.Context) (httptransport.ListProductsResponse, error) {
	items, err := h.Service.ListActive(ctx)
	if err != nil {
		return httptransport.ListProductsResponse{}, err
	}
	resp := httptransport.ListProductsResponse{Status: "success"}
	resp.Data.Products = make([]httptransport.ProductDTO, 0, len(items))
	for _, item := range items {
		resp.Data.Products = append(resp.Data.Products, toProductDTO(item))
	}
	return resp, nil
}

func (h Handler) GetProductHandler(ctx context.Context, productID string) (httptransport.GetProductResponse, error) {
	item, err := h.Service.GetActive(ctx, productID)
	if err != nil {
		return httptransport.GetProductResponse{}, err
	}
	resp := httptransport.GetProductResponse{Status: "success"}
	resp.Data.Product = toProductDTO(item)
	return resp, nil
}

func (h Handler) CreateProductHandler(
	ctx context.Context,
	ownerID string,
	req httptransport.CreateProductRequest,
) (httptransport.CreateProductResponse, error) {
	product, err := h.Service.CreateProduct(ctx, ports.CreateProductInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		OwnerID:     ownerID,
		Cloneable:   req.Cloneable,
	})
	if err != nil {
		return httptransport.CreateProductResponse{}, err
	}
	resp := httptransport.CreateProductResponse{Status: "success"}
	resp.Data.ProductID = product.ProductID
	resp.Data.CreatedAt = product.CreatedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func (h Handler) LikeHandler(ctx context.Context, userID string, productID string) (httptransport.LikeResponse, error) {
	count, err := h.Service.Like(ctx, userID, productID)
	if err != nil {
		return httptransport.LikeResponse{}, err
	}
	return likeResponse(productID, count), nil
}

func (h Handler) UnlikeHandler(ctx context.Context, userID string, productID string) (httptransport.LikeResponse, error) {
	count, err := h.Service.Unlike(ctx, userID, productID)
	if err != nil {
		return httptransport.LikeResponse{}, err
	}
	return likeResponse(productID, count), nil
}

func likeResponse(productID string, count int64) httptransport.LikeResponse {
	resp := httptransport.LikeResponse{Status: "success"}
	resp.Data.ProductID = productID
	resp.Data.Likes = count
	return resp
}

func toProductDTO(item ports.Product) httptransport.ProductDTO {
	return httptransport.ProductDTO{
		ProductID:   item.ProductID,
		Title:       item.Title,
		Author:      item.Author,
		Description: item.Description,
		CoverURL:    item.CoverURL,
		OwnerID:     item.OwnerID,
		Cloneable:   item.Cloneable,
		LikesCount:  item.LikesCount,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
