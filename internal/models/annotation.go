package models

import "time"

// Annotation is a free-text note owned by a single user.
type Annotation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UsuarioID    uint      `gorm:"not null;index" json:"usuario"`
	Conteudo     string    `gorm:"not null" json:"conteudo"`
	DataCriacao  time.Time `gorm:"autoCreateTime" json:"data_criacao"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizado_em"`
}

func (Annotation) TableName() string { return "anotacoes" }
