package models

import "time"

const (
	PriorityLow    = "baixa"
	PriorityMedium = "media"
	PriorityHigh   = "alta"
)

const (
	RecurrenceDaily   = "diaria"
	RecurrenceWeekly  = "semanal"
	RecurrenceMonthly = "mensal"
	RecurrenceYearly  = "anual"
)

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:50;uniqueIndex;not null" json:"nome"`
}

func (Tag) TableName() string { return "tags" }

// Task is the central work item. The owner is required and cascade-deleted
// with the user; the assignee and completer references are weak and nulled
// when the referenced user goes away. The subtask relation is asymmetric:
// a task lists its subtasks without the reverse edge existing.
type Task struct {
	ID              uint       `gorm:"primaryKey"`
	UsuarioID       uint       `gorm:"not null;index"`
	Titulo          string     `gorm:"size:200;not null"`
	Descricao       string
	Concluida       bool       `gorm:"not null;default:false"`
	DataCriacao     time.Time  `gorm:"autoCreateTime"`
	DataAtualizacao time.Time  `gorm:"autoUpdateTime"`
	DataConclusao   *time.Time
	Prioridade      string     `gorm:"size:10;not null;default:media"`
	DataLimite      *time.Time
	Categoria       string     `gorm:"size:100"`
	ResponsavelID   *uint      `gorm:"index"`
	Anexo           string
	Tags            []Tag      `gorm:"many2many:tarefa_tags;"`
	Lembrete        *time.Time
	Recorrente      bool       `gorm:"not null;default:false"`
	Recorrencia     string     `gorm:"size:50"`
	Subtarefas      []Task     `gorm:"many2many:tarefa_subtarefas;joinForeignKey:tarefa_id;joinReferences:subtarefa_id"`
	ConcluidaPorID  *uint
	LembreteEnviado bool       `gorm:"not null;default:false"`
}

func (Task) TableName() string { return "tarefas" }

func IsValidPriority(value string) bool {
	switch value {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func IsValidRecurrence(value string) bool {
	switch value {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}
