package models

import "time"

// User is an account that owns tasks and annotations. JSON field names follow
// the legacy API contract consumed by the existing frontend.
type User struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Nome            string     `gorm:"not null" json:"nome"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	Telefone        string     `json:"telefone,omitempty"`
	FotoPerfil      string     `json:"foto_perfil,omitempty"`
	CEP             string     `gorm:"column:cep" json:"cep,omitempty"`
	DataNascimento  *time.Time `gorm:"type:date" json:"data_nascimento,omitempty"`
	IsStaff         bool       `gorm:"not null;default:false" json:"is_staff"`
	IsAtivo         bool       `gorm:"not null;default:true" json:"is_ativo"`
	DataRegistro    time.Time  `gorm:"autoCreateTime" json:"data_registro"`
	DataAtualizacao time.Time  `gorm:"autoUpdateTime" json:"data_atualizacao"`
}

func (User) TableName() string { return "usuarios" }
