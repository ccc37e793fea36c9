package api

import "time"

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type registerInput struct {
	Nome     string `json:"nome" form:"nome"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// taskWriteInput covers create and full replace. Any owner field in the body
// is ignored; the authenticated caller always owns created tasks.
type taskWriteInput struct {
	Titulo          string     `json:"titulo" validate:"required,max=200"`
	Descricao       string     `json:"descricao"`
	Concluida       bool       `json:"concluida"`
	Prioridade      string     `json:"prioridade" validate:"omitempty,oneof=baixa media alta"`
	DataLimite      *time.Time `json:"data_limite"`
	Categoria       string     `json:"categoria" validate:"max=100"`
	Responsavel     *uint      `json:"responsavel"`
	Tags            []string   `json:"tags" validate:"dive,max=50"`
	Lembrete        *time.Time `json:"lembrete"`
	Recorrente      bool       `json:"recorrente"`
	Recorrencia     string     `json:"recorrencia" validate:"omitempty,oneof=diaria semanal mensal anual"`
	Subtarefas      []uint     `json:"subtarefas"`
	LembreteEnviado bool       `json:"lembrete_enviado"`
}

// taskPatchInput supports partial updates: a nil pointer means the field was
// absent and stays untouched. Nullable columns are cleared through PUT.
type taskPatchInput struct {
	Titulo          *string    `json:"titulo" validate:"omitempty,max=200"`
	Descricao       *string    `json:"descricao"`
	Concluida       *bool      `json:"concluida"`
	Prioridade      *string    `json:"prioridade" validate:"omitempty,oneof=baixa media alta"`
	DataLimite      *time.Time `json:"data_limite"`
	Categoria       *string    `json:"categoria" validate:"omitempty,max=100"`
	Responsavel     *uint      `json:"responsavel"`
	Tags            *[]string  `json:"tags" validate:"omitempty,dive,max=50"`
	Lembrete        *time.Time `json:"lembrete"`
	Recorrente      *bool      `json:"recorrente"`
	Recorrencia     *string    `json:"recorrencia" validate:"omitempty,oneof=diaria semanal mensal anual"`
	Subtarefas      *[]uint    `json:"subtarefas"`
	LembreteEnviado *bool      `json:"lembrete_enviado"`
}

type annotationInput struct {
	Conteudo string `json:"conteudo" validate:"required"`
}

// profileInput uses pointer fields: absent fields are silently ignored.
type profileInput struct {
	Nome           *string    `json:"nome"`
	Email          *string    `json:"email"`
	Telefone       *string    `json:"telefone"`
	CEP            *string    `json:"cep"`
	DataNascimento *time.Time `json:"data_nascimento"`
}
