package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"taskapi/internal/model"
	"taskapi/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// TaskRequest представляет запрос на создание или частичное обновление задачи
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// bindTaskRequest парсит тело запроса; несовпадение типа поля — это ошибка
// валидации (422), невалидный JSON — 400
func bindTaskRequest(c *gin.Context, req *TaskRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			respondValidationFailed(c, []FieldError{typeFieldError(typeErr)})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return false
	}
	return true
}

func respondValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "Validation failed",
		"errors": errs,
	})
}

// GetAll возвращает все задачи, новые первыми
func (h *TaskHandler) GetAll(c *gin.Context) {
	tasks, err := h.taskRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	// Пустой список сериализуем как [], а не null
	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = toTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// Create создает новую задачу
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if !bindTaskRequest(c, &req) {
		return
	}

	if errs := validateCreate(req); len(errs) > 0 {
		respondValidationFailed(c, errs)
		return
	}

	// ID и метки времени назначает хранилище; клиентские значения игнорируются
	task := &model.Task{
		Title:       *req.Title,
		Description: req.Description,
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// GetByID получает задачу по ID
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Строка, не являющаяся UUID, не идентифицирует ни одну задачу
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update частично обновляет задачу: заменяются только переданные поля
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var req TaskRequest
	if !bindTaskRequest(c, &req) {
		return
	}

	if errs := validatePatch(req); len(errs) > 0 {
		respondValidationFailed(c, errs)
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	// ID и created_at не изменяются; updated_at обновляет хранилище
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete безвозвратно удаляет задачу
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
