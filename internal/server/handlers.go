package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/taskboard/internal/task"
)

func (s *Server) handleList(c *gin.Context) {
	tasks, err := s.repo.ListTasks(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleGet(c *gin.Context) {
	id, ok := s.taskID(c)
	if !ok {
		return
	}

	t, err := s.repo.GetTask(c.Request.Context(), id)
	if err != nil {
		s.failRepo(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleCreate(c *gin.Context) {
	body, ok := s.body(c)
	if !ok {
		return
	}

	t := body.task(0)
	if err := s.repo.CreateTask(c.Request.Context(), &t); err != nil {
		s.failRepo(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleUpdate(c *gin.Context) {
	id, ok := s.taskID(c)
	if !ok {
		return
	}
	body, ok := s.body(c)
	if !ok {
		return
	}

	t := body.task(id)
	if err := s.repo.UpdateTask(c.Request.Context(), &t); err != nil {
		s.failRepo(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleDelete(c *gin.Context) {
	id, ok := s.taskID(c)
	if !ok {
		return
	}

	if err := s.repo.DeleteTask(c.Request.Context(), id); err != nil {
		s.failRepo(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		s.fail(c, http.StatusBadRequest, task.ErrInvalidID)
		return 0, false
	}
	return id, true
}

func (s *Server) body(c *gin.Context) (taskBody, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return taskBody{}, false
	}
	body, err := decodeTaskBody(s.schema, raw)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return taskBody{}, false
	}
	return body, true
}

func (b taskBody) task(id int64) task.Task {
	t := task.Task{ID: id, Title: b.Title}
	if b.Description != nil {
		t.Description = *b.Description
	}
	if b.Completed != nil {
		t.Completed = *b.Completed
	}
	return t
}

func (s *Server) failRepo(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		s.fail(c, http.StatusNotFound, err)
	case errors.Is(err, task.ErrEmptyTitle):
		s.fail(c, http.StatusBadRequest, err)
	default:
		s.fail(c, http.StatusInternalServerError, err)
	}
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
