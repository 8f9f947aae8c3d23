package handler

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/turtlefinance/meeting-sync/errors"
)

// DatabaseBootstrapper provisions the destination record-store databases
// under a parent page.
type DatabaseBootstrapper interface {
	CreateMeetingDatabase(ctx context.Context, parentPageID string) (string, error)
	CreateTaskDatabase(ctx context.Context, parentPageID string) (string, error)
}

// ViewRefresher rebuilds the per-client spreadsheet view.
type ViewRefresher interface {
	Apply(ctx context.Context) (int, error)
}

// Admin handles operator endpoints: destination provisioning and view
// refresh. These are manual, low-frequency operations.
type Admin struct {
	bootstrapper DatabaseBootstrapper
	refresher    ViewRefresher
	parentPageID string
	logger       *zap.Logger
}

// NewAdmin creates a new handler
func NewAdmin(bootstrapper DatabaseBootstrapper, refresher ViewRefresher, parentPageID string, logger *zap.Logger) *Admin {
	return &Admin{
		bootstrapper: bootstrapper,
		refresher:    refresher,
		parentPageID: parentPageID,
		logger:       logger,
	}
}

type createDatabasesRequest struct {
	ParentPageID string `json:"parentPageId"`
}

// CreateNotionDatabases provisions the meeting and task databases and
// returns their ids so they can be set in the environment.
func (h *Admin) CreateNotionDatabases(c echo.Context) error {
	var req createDatabasesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	parentPageID := strings.TrimSpace(req.ParentPageID)
	if parentPageID == "" {
		parentPageID = h.parentPageID
	}
	if parentPageID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("parentPageId is required"))
	}

	ctx := c.Request().Context()

	meetingDB, err := h.bootstrapper.CreateMeetingDatabase(ctx, parentPageID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	taskDB, err := h.bootstrapper.CreateTaskDatabase(ctx, parentPageID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	h.logger.Info("notion databases provisioned",
		zap.String("meeting_database_id", meetingDB),
		zap.String("task_database_id", taskDB),
	)

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"meetingDatabaseId": meetingDB,
		"taskDatabaseId":    taskDB,
	})
}

// RefreshClientView rebuilds the client filter sheet from the current
// dropdown selection.
func (h *Admin) RefreshClientView(c echo.Context) error {
	rows, err := h.refresher.Apply(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"rows": rows})
}
