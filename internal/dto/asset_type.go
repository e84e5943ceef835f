package dto

import (
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// CreateAssetTypeRequest is the payload for creating an asset type.
type CreateAssetTypeRequest struct {
	Code string `json:"code" binding:"required,min=1,max=32"`
	Name string `json:"name" binding:"required,min=1,max=128"`
}

// AssetTypeResponse defines the data returned for an asset type.
type AssetTypeResponse struct {
	AssetTypeID string `json:"assetTypeID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
}

// ToAssetTypeResponse converts a domain AssetType to its response DTO.
func ToAssetTypeResponse(a *domain.AssetType) AssetTypeResponse {
	return AssetTypeResponse{
		AssetTypeID: a.AssetTypeID,
		Code:        a.Code,
		Name:        a.Name,
	}
}

// ToAssetTypeResponses converts a slice of domain asset types.
func ToAssetTypeResponses(as []domain.AssetType) []AssetTypeResponse {
	responses := make([]AssetTypeResponse, len(as))
	for i := range as {
		responses[i] = ToAssetTypeResponse(&as[i])
	}
	return responses
}
