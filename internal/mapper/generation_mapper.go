package mapper

import (
	"encoding/json"

	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GenerationMapper struct{}

func NewGenerationMapper() *GenerationMapper {
	return &GenerationMapper{}
}

func (m *GenerationMapper) ToEntity(g *model.Generation) *entity.Generation {
	if g == nil {
		return nil
	}

	var sourceIds []uuid.UUID
	if len(g.SourceDocumentIds) > 0 {
		_ = json.Unmarshal(g.SourceDocumentIds, &sourceIds)
	}
	if sourceIds == nil {
		sourceIds = []uuid.UUID{}
	}

	return &entity.Generation{
		Id:                g.Id,
		UserId:            g.UserId,
		ProjectId:         g.ProjectId,
		Type:              entity.GenerationType(g.Type),
		Title:             g.Title,
		Content:           json.RawMessage(g.Content),
		SourceDocumentIds: sourceIds,
		Version:           g.Version,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func (m *GenerationMapper) ToModel(g *entity.Generation) *model.Generation {
	if g == nil {
		return nil
	}

	sourceIds := g.SourceDocumentIds
	if sourceIds == nil {
		sourceIds = []uuid.UUID{}
	}
	sourceIdsJson, _ := json.Marshal(sourceIds)

	return &model.Generation{
		Id:                g.Id,
		UserId:            g.UserId,
		ProjectId:         g.ProjectId,
		Type:              string(g.Type),
		Title:             g.Title,
		Content:           datatypes.JSON(g.Content),
		SourceDocumentIds: datatypes.JSON(sourceIdsJson),
		Version:           g.Version,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func (m *GenerationMapper) ToEntities(generations []*model.Generation) []*entity.Generation {
	entities := make([]*entity.Generation, len(generations))
	for i, g := range generations {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
