package mapper

import (
	"ai-curriculum-be/internal/entity"
	"ai-curriculum-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	return &entity.Document{
		Id:            d.Id,
		UserId:        d.UserId,
		ProjectId:     d.ProjectId,
		Filename:      d.Filename,
		FileType:      d.FileType,
		FileSize:      d.FileSize,
		StoragePath:   d.StoragePath,
		ExtractedText: d.ExtractedText,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	return &model.Document{
		Id:            d.Id,
		UserId:        d.UserId,
		ProjectId:     d.ProjectId,
		Filename:      d.Filename,
		FileType:      d.FileType,
		FileSize:      d.FileSize,
		StoragePath:   d.StoragePath,
		ExtractedText: d.ExtractedText,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (m *DocumentMapper) ToEntities(documents []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(documents))
	for i, d := range documents {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
