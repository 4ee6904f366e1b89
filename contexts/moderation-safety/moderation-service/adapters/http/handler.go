package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"showcase/contexts/moderation-safety/moderation-service/application"
	domainerrors "showcase/contexts/moderation-safety/moderation-service/domain/errors"
	"showcase/contexts/moderation-safety/moderation-service/ports"
	httptransport "showcase/contexts/moderation-safety/moderation-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) UpdateProductHandler(
	ctx context.Context,
	productID string,
	req httptransport.UpdateProductRequest,
) (httptransport.UpdateProductResponse, error) {
	if err := req.Validate(); err != nil {
		return httptransport.UpdateProductResponse{}, domainerrors.ErrInvalidRequest
	}
	product, err := h.Service.UpdateProduct(ctx, productID, ports.ProductPatch{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		Cloneable:   req.Cloneable,
	})
	if err != nil {
		return httptransport.UpdateProductResponse{}, err
	}

	resp := httptransport.UpdateProductResponse{Status: "success"}
	resp.Data.Product = toProductDTO(product)
	return resp, nil
}

func (h Handler) DeleteProductHandler(ctx context.Context, productID string) (httptransport.DeleteProductResponse, error) {
	deletedAt, err := h.Service.SoftDeleteProduct(ctx, productID)
	if err != nil {
		return httptransport.DeleteProductResponse{}, err
	}
	resp := httptransport.DeleteProductResponse{Status: "success"}
	resp.Data.ProductID = productID
	resp.Data.DeletedAt = deletedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func (h Handler) RestoreProductHandler(ctx context.Context, productID string) (httptransport.RestoreProductResponse, error) {
	if err := h.Service.RestoreProduct(ctx, productID); err != nil {
		return httptransport.RestoreProductResponse{}, err
	}
	resp := httptransport.RestoreProductResponse{Status: "success"}
	resp.Data.ProductID = productID
	return resp, nil
}

func (h Handler) RestoreAllProductsHandler(ctx context.Context) (httptransport.RestoreAllProductsResponse, error) {
	restored, err := h.Service.RestoreAllProducts(ctx)
	if err != nil {
		return httptransport.RestoreAllProductsResponse{}, err
	}
	resp := httptransport.RestoreAllProductsResponse{Status: "success"}
	resp.Data.Restored = restored
	return resp, nil
}

func (h Handler) ListUsersHandler(ctx context.Context) (httptransport.ListUsersResponse, error) {
	users, err := h.Service.ListUsers(ctx)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	resp := httptransport.ListUsersResponse{Status: "success"}
	resp.Data.Users = make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		resp.Data.Users = append(resp.Data.Users, httptransport.UserDTO{
			UserID:    user.UserID,
			Name:      user.Name,
			Surname:   user.Surname,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) DeleteUserHandler(ctx context.Context, userID string) (httptransport.DeleteUserResponse, error) {
	removal, err := h.Service.DeleteUser(ctx, userID)
	if err != nil {
		return httptransport.DeleteUserResponse{}, err
	}
	resp := httptransport.DeleteUserResponse{Status: "success"}
	resp.Data.UserID = removal.UserID
	resp.Data.ProductsDeleted = removal.ProductsDeleted
	resp.Data.RemovedAt = removal.RemovedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func toProductDTO(item ports.Product) httptransport.ProductDTO {
	dto := httptransport.ProductDTO{
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
	if item.DeletedAt != nil {
		deletedAt := item.DeletedAt.UTC().Format(time.RFC3339)
		dto.DeletedAt = &deletedAt
	}
	return dto
}
