package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestTaskLifecycleScenario(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	token := loginToken(t, app, "ana@x.com", "p1")

	response := doJSON(t, app, http.MethodPost, "/api/tarefas/", token, fiber.Map{
		"titulo": "Buy milk",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	created := decodeJSONMap(t, response)
	response.Body.Close()

	if created["concluida"] != false {
		t.Fatalf("expected new task not completed, got %v", created["concluida"])
	}
	if created["data_conclusao"] != nil {
		t.Fatalf("expected null data_conclusao, got %v", created["data_conclusao"])
	}
	if created["prioridade"] != "media" {
		t.Fatalf("expected default prioridade media, got %v", created["prioridade"])
	}

	taskID := int(created["id"].(float64))
	taskPath := taskURL(taskID)

	response = doJSON(t, app, http.MethodPatch, taskPath, token, fiber.Map{"concluida": true})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	completed := decodeJSONMap(t, response)
	response.Body.Close()

	if completed["concluida"] != true {
		t.Fatalf("expected completed task, got %v", completed["concluida"])
	}
	if completed["data_conclusao"] == nil {
		t.Fatal("expected data_conclusao set on completion")
	}
	if completed["concluida_por"] == nil {
		t.Fatal("expected concluida_por set on completion")
	}

	response = doJSON(t, app, http.MethodPatch, taskPath, token, fiber.Map{"concluida": false})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	reopened := decodeJSONMap(t, response)
	response.Body.Close()

	if reopened["concluida"] != false {
		t.Fatalf("expected reopened task, got %v", reopened["concluida"])
	}
	if reopened["data_conclusao"] != nil {
		t.Fatalf("expected data_conclusao cleared, got %v", reopened["data_conclusao"])
	}
	if reopened["concluida_por"] != nil {
		t.Fatalf("expected concluida_por cleared, got %v", reopened["concluida_por"])
	}
}

func TestCreateTaskIgnoresOwnerInBody(t *testing.T) {
	app, database := newTestApp(t)
	ana := createTestUser(t, database, "Ana", "ana@x.com", "p1")
	outro := createTestUser(t, database, "Outro", "outro@x.com", "p2")
	token := loginToken(t, app, "ana@x.com", "p1")

	response := doJSON(t, app, http.MethodPost, "/api/tarefas/", token, fiber.Map{
		"titulo":  "Mine anyway",
		"usuario": outro.ID,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	created := decodeJSONMap(t, response)
	if owner := int(created["usuario"].(float64)); owner != int(ana.ID) {
		t.Fatalf("expected owner %d, got %d", ana.ID, owner)
	}
}

func TestTaskValidationErrors(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	token := loginToken(t, app, "ana@x.com", "p1")

	tests := []struct {
		name string
		body fiber.Map
	}{
		{name: "missing titulo", body: fiber.Map{"descricao": "no title"}},
		{name: "invalid prioridade", body: fiber.Map{"titulo": "T", "prioridade": "urgente"}},
		{name: "invalid recorrencia", body: fiber.Map{"titulo": "T", "recorrencia": "quinzenal"}},
		{name: "unknown responsavel", body: fiber.Map{"titulo": "T", "responsavel": 9999}},
		{name: "unknown subtarefa", body: fiber.Map{"titulo": "T", "subtarefas": []int{9999}}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := doJSON(t, app, http.MethodPost, "/api/tarefas/", token, testCase.body)
			defer response.Body.Close()

			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestTaskNotFound(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	token := loginToken(t, app, "ana@x.com", "p1")

	methods := []struct {
		method string
		body   fiber.Map
	}{
		{method: http.MethodGet},
		{method: http.MethodPut, body: fiber.Map{"titulo": "T"}},
		{method: http.MethodPatch, body: fiber.Map{"concluida": true}},
		{method: http.MethodDelete},
	}

	for _, testCase := range methods {
		response := doJSON(t, app, testCase.method, taskURL(4242), token, testCase.body)
		if response.StatusCode != http.StatusNotFound {
			t.Fatalf("%s unknown task: expected 404, got %d", testCase.method, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestTaskListGlobalNewestFirst(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	createTestUser(t, database, "Bia", "bia@x.com", "p2")
	anaToken := loginToken(t, app, "ana@x.com", "p1")
	biaToken := loginToken(t, app, "bia@x.com", "p2")

	for _, step := range []struct {
		token  string
		titulo string
	}{
		{token: anaToken, titulo: "first"},
		{token: biaToken, titulo: "second"},
		{token: anaToken, titulo: "third"},
	} {
		response := doJSON(t, app, http.MethodPost, "/api/tarefas/", step.token, fiber.Map{"titulo": step.titulo})
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("create %q: expected 201, got %d", step.titulo, response.StatusCode)
		}
		response.Body.Close()
	}

	// The legacy contract exposes the global set to any authenticated user.
	response := doJSON(t, app, http.MethodGet, "/api/tarefas/", biaToken, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	tasks := decodeJSONList(t, response)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks in the global list, got %d", len(tasks))
	}
	wantOrder := []string{"third", "second", "first"}
	for index, want := range wantOrder {
		if got := tasks[index]["titulo"]; got != want {
			t.Fatalf("position %d: expected %q, got %v", index, want, got)
		}
	}
}

func TestTaskTagsAndSubtasks(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	token := loginToken(t, app, "ana@x.com", "p1")

	response := doJSON(t, app, http.MethodPost, "/api/tarefas/", token, fiber.Map{"titulo": "child"})
	child := decodeJSONMap(t, response)
	response.Body.Close()
	childID := int(child["id"].(float64))

	response = doJSON(t, app, http.MethodPost, "/api/tarefas/", token, fiber.Map{
		"titulo":     "parent",
		"tags":       []string{"casa", "urgente", "casa"},
		"subtarefas": []int{childID, childID},
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	parent := decodeJSONMap(t, response)
	response.Body.Close()

	tags, _ := parent["tags"].([]any)
	if len(tags) != 2 {
		t.Fatalf("expected duplicate tag collapsed to 2 tags, got %v", parent["tags"])
	}
	subtasks, _ := parent["subtarefas"].([]any)
	if len(subtasks) != 1 || int(subtasks[0].(float64)) != childID {
		t.Fatalf("expected duplicate subtask collapsed to [%d], got %v", childID, parent["subtarefas"])
	}

	// Asymmetric relation: the child must not list the parent back.
	response = doJSON(t, app, http.MethodGet, taskURL(childID), token, nil)
	fetchedChild := decodeJSONMap(t, response)
	response.Body.Close()
	if childSubtasks, _ := fetchedChild["subtarefas"].([]any); len(childSubtasks) != 0 {
		t.Fatalf("expected child without subtasks, got %v", fetchedChild["subtarefas"])
	}

	parentID := int(parent["id"].(float64))
	response = doJSON(t, app, http.MethodPatch, taskURL(parentID), token, fiber.Map{
		"subtarefas": []int{parentID},
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("self subtask: expected 400, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestTaskPutReplacesOptionalFields(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	token := loginToken(t, app, "ana@x.com", "p1")

	response := doJSON(t, app, http.MethodPost, "/api/tarefas/", token, fiber.Map{
		"titulo":      "with extras",
		"descricao":   "details",
		"categoria":   "casa",
		"prioridade":  "alta",
		"data_limite": "2026-09-01T12:00:00Z",
	})
	created := decodeJSONMap(t, response)
	response.Body.Close()
	taskID := int(created["id"].(float64))

	response = doJSON(t, app, http.MethodPut, taskURL(taskID), token, fiber.Map{
		"titulo": "bare replacement",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	replaced := decodeJSONMap(t, response)
	response.Body.Close()

	if replaced["titulo"] != "bare replacement" {
		t.Fatalf("expected replaced titulo, got %v", replaced["titulo"])
	}
	if replaced["descricao"] != "" {
		t.Fatalf("expected cleared descricao, got %v", replaced["descricao"])
	}
	if replaced["categoria"] != "" {
		t.Fatalf("expected cleared categoria, got %v", replaced["categoria"])
	}
	if replaced["data_limite"] != nil {
		t.Fatalf("expected cleared data_limite, got %v", replaced["data_limite"])
	}
	if replaced["prioridade"] != "media" {
		t.Fatalf("expected prioridade reset to media, got %v", replaced["prioridade"])
	}
}

func TestTaskDelete(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	token := loginToken(t, app, "ana@x.com", "p1")

	response := doJSON(t, app, http.MethodPost, "/api/tarefas/", token, fiber.Map{"titulo": "doomed"})
	created := decodeJSONMap(t, response)
	response.Body.Close()
	taskID := int(created["id"].(float64))

	response = doJSON(t, app, http.MethodDelete, taskURL(taskID), token, nil)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, taskURL(taskID), token, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", response.StatusCode)
	}
}

func TestRecurrentTaskExposesNextOccurrence(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "Ana", "ana@x.com", "p1")
	token := loginToken(t, app, "ana@x.com", "p1")

	response := doJSON(t, app, http.MethodPost, "/api/tarefas/", token, fiber.Map{
		"titulo":      "water plants",
		"recorrente":  true,
		"recorrencia": "semanal",
		"data_limite": "2026-01-05T08:00:00Z",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	created := decodeJSONMap(t, response)
	if created["proxima_ocorrencia"] == nil {
		t.Fatal("expected proxima_ocorrencia for recurrent task with due date")
	}
}
