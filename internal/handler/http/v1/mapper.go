package v1

import "github.com/shenikar/venue_prompt_system/internal/models"

// DTOToPositionSample преобразует DTO выборки в доменную модель
func DTOToPositionSample(dto PositionSampleRequest) models.PositionSample {
	return models.PositionSample{
		Timestamp: dto.Timestamp,
		Coordinate: models.Coordinate{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		},
		AccuracyMeters: dto.AccuracyMeters,
		SpeedMps:       dto.SpeedMps,
	}
}

// ModelToExclusionResponse преобразует доменную модель зоны в DTO для ответа
func ModelToExclusionResponse(model *models.ExclusionZone) *ExclusionZoneResponse {
	return &ExclusionZoneResponse{
		ID:        model.ID,
		Name:      model.Name,
		Latitude:  model.Center.Latitude,
		Longitude: model.Center.Longitude,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToExclusionResponses преобразует слайс зон в слайс DTO
func ModelsToExclusionResponses(zones []models.ExclusionZone) []*ExclusionZoneResponse {
	responses := make([]*ExclusionZoneResponse, len(zones))
	for i := range zones {
		responses[i] = ModelToExclusionResponse(&zones[i])
	}
	return responses
}

// ModelToPromptResponse преобразует запись журнала в DTO для ответа
func ModelToPromptResponse(model *models.NotificationRecord) *PromptResponse {
	return &PromptResponse{
		ID:        model.ID,
		VenueID:   model.VenueID,
		VenueName: model.VenueName,
		Category:  model.Category,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		SentAt:    model.SentAt,
	}
}

// ModelsToPromptResponses преобразует слайс записей журнала в слайс DTO
func ModelsToPromptResponses(records []*models.NotificationRecord) []*PromptResponse {
	responses := make([]*PromptResponse, len(records))
	for i, rec := range records {
		responses[i] = ModelToPromptResponse(rec)
	}
	return responses
}
