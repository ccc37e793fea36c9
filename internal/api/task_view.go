package api

import (
	"time"

	"github.com/organizo-app/organizo/internal/models"
	"github.com/organizo-app/organizo/internal/services"
)

// taskView is the wire shape of a task. Tags serialize as names, subtasks as
// ids, the attachment as a media URL. proxima_ocorrencia is computed on read
// for recurrent tasks with a due date.
type taskView struct {
	ID                uint       `json:"id"`
	Usuario           uint       `json:"usuario"`
	Titulo            string     `json:"titulo"`
	Descricao         string     `json:"descricao"`
	Concluida         bool       `json:"concluida"`
	DataCriacao       time.Time  `json:"data_criacao"`
	DataAtualizacao   time.Time  `json:"data_atualizacao"`
	DataConclusao     *time.Time `json:"data_conclusao"`
	Prioridade        string     `json:"prioridade"`
	DataLimite        *time.Time `json:"data_limite"`
	Categoria         string     `json:"categoria"`
	Responsavel       *uint      `json:"responsavel"`
	Anexo             string     `json:"anexo,omitempty"`
	Tags              []string   `json:"tags"`
	Lembrete          *time.Time `json:"lembrete"`
	Recorrente        bool       `json:"recorrente"`
	Recorrencia       string     `json:"recorrencia,omitempty"`
	Subtarefas        []uint     `json:"subtarefas"`
	ConcluidaPor      *uint      `json:"concluida_por"`
	LembreteEnviado   bool       `json:"lembrete_enviado"`
	ProximaOcorrencia *time.Time `json:"proxima_ocorrencia,omitempty"`
}

func (handler *Handler) taskToView(task *models.Task) taskView {
	tagNames := make([]string, 0, len(task.Tags))
	for _, tag := range task.Tags {
		tagNames = append(tagNames, tag.Nome)
	}

	subtaskIDs := make([]uint, 0, len(task.Subtarefas))
	for _, subtask := range task.Subtarefas {
		subtaskIDs = append(subtaskIDs, subtask.ID)
	}

	anexoURL := ""
	if task.Anexo != "" {
		anexoURL = handler.mediaURL + "/" + task.Anexo
	}

	return taskView{
		ID:                task.ID,
		Usuario:           task.UsuarioID,
		Titulo:            task.Titulo,
		Descricao:         task.Descricao,
		Concluida:         task.Concluida,
		DataCriacao:       task.DataCriacao,
		DataAtualizacao:   task.DataAtualizacao,
		DataConclusao:     task.DataConclusao,
		Prioridade:        task.Prioridade,
		DataLimite:        task.DataLimite,
		Categoria:         task.Categoria,
		Responsavel:       task.ResponsavelID,
		Anexo:             anexoURL,
		Tags:              tagNames,
		Lembrete:          task.Lembrete,
		Recorrente:        task.Recorrente,
		Recorrencia:       task.Recorrencia,
		Subtarefas:        subtaskIDs,
		ConcluidaPor:      task.ConcluidaPorID,
		LembreteEnviado:   task.LembreteEnviado,
		ProximaOcorrencia: services.NextOccurrence(task, time.Now().In(handler.location)),
	}
}

func (handler *Handler) tasksToViews(tasks []models.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for index := range tasks {
		views = append(views, handler.taskToView(&tasks[index]))
	}
	return views
}
