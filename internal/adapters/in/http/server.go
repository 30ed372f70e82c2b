package http

import (
	"context"
	"net/http"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// UseCases groups the application handlers the server delegates to.
type UseCases struct {
	AddItem           commands.AddItemCommandHandler
	RemoveLastItem    commands.RemoveLastItemCommandHandler
	UpdateItem        commands.UpdateItemCommandHandler
	ProceedToLocation commands.ProceedToLocationCommandHandler
	UpdateLocation    commands.UpdateLocationCommandHandler
	SubmitLocation    commands.SubmitLocationCommandHandler
	ShiftMonth        commands.ShiftMonthCommandHandler
	SelectDate        commands.SelectDateCommandHandler
	SubmitSchedule    commands.SubmitScheduleCommandHandler
	FinalizeOrder     commands.FinalizeOrderCommandHandler
	GoBack            commands.GoBackCommandHandler
	Restart           commands.RestartCommandHandler

	GetWizard      queries.GetWizardQueryHandler
	SuggestStreets queries.SuggestStreetsQueryHandler
}

// Server translates HTTP requests into wizard commands and queries. Every
// successful wizard call answers with the full wizard view.
type Server struct {
	uc UseCases
}

func NewServer(uc UseCases) *Server {
	return &Server{uc: uc}
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/streets", s.GetStreets)

	w := api.Group("/wizard")
	w.GET("", s.GetWizard)
	w.POST("/items", s.AddItem)
	w.DELETE("/items/last", s.RemoveLastItem)
	w.PATCH("/items/:id", s.UpdateItem)
	w.POST("/back", s.GoBack)
	w.POST("/restart", s.Restart)
	w.POST("/calculator/next", s.ProceedToLocation)
	w.PUT("/location", s.UpdateLocation)
	w.POST("/location/next", s.SubmitLocation)
	w.POST("/calendar/month", s.ShiftMonth)
	w.POST("/calendar/select", s.SelectDate)
	w.POST("/scheduling/next", s.SubmitSchedule)
	w.POST("/observations/finish", s.FinishOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetWizard handles GET /api/v1/wizard.
func (s *Server) GetWizard(ctx echo.Context) error {
	return s.respondWizard(ctx, http.StatusOK)
}

// GetStreets handles GET /api/v1/streets?q=prefix.
func (s *Server) GetStreets(ctx echo.Context) error {
	query := queries.NewSuggestStreetsQuery(ctx.QueryParam("q"))

	streets, err := s.uc.SuggestStreets.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, streets)
}

// AddItem handles POST /api/v1/wizard/items.
func (s *Server) AddItem(ctx echo.Context) error {
	if _, err := s.uc.AddItem.Handle(ctx.Request().Context(), commands.NewAddItemCommand()); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWizard(ctx, http.StatusCreated)
}

// RemoveLastItem handles DELETE /api/v1/wizard/items/last. Removing the only
// carpet is not an error; the list simply stays as is.
func (s *Server) RemoveLastItem(ctx echo.Context) error {
	if _, err := s.uc.RemoveLastItem.Handle(ctx.Request().Context(), commands.NewRemoveLastItemCommand()); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWizard(ctx, http.StatusOK)
}

// UpdateItem handles PATCH /api/v1/wizard/items/:id.
func (s *Server) UpdateItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req UpdateItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	values := make(map[string]string, 2)
	if req.Length != nil {
		values[carpet.Length] = *req.Length
	}
	if req.Width != nil {
		values[carpet.Width] = *req.Width
	}
	if len(values) == 0 {
		return badRequest(ctx, "Nothing to update: send length and/or width")
	}

	cmd, err := commands.NewUpdateItemCommand(id, values)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	return s.run(ctx, func(c context.Context) error {
		return s.uc.UpdateItem.Handle(c, cmd)
	})
}

// ProceedToLocation handles POST /api/v1/wizard/calculator/next.
func (s *Server) ProceedToLocation(ctx echo.Context) error {
	return s.run(ctx, func(c context.Context) error {
		return s.uc.ProceedToLocation.Handle(c, commands.NewProceedToLocationCommand())
	})
}

// UpdateLocation handles PUT /api/v1/wizard/location.
func (s *Server) UpdateLocation(ctx echo.Context) error {
	var req LocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateLocationCommand(commands.LocationDetails{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		Locality:   req.City,
		Sector:     req.Sector,
		StreetType: req.StreetType,
		StreetName: req.StreetName,
		Number:     req.Number,
		Building:   req.Building,
		Scara:      req.Scara,
		Floor:      req.Floor,
		Intercom:   req.Intercom,
		Apartment:  req.Apartment,
	})
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	return s.run(ctx, func(c context.Context) error {
		return s.uc.UpdateLocation.Handle(c, cmd)
	})
}

// SubmitLocation handles POST /api/v1/wizard/location/next.
func (s *Server) SubmitLocation(ctx echo.Context) error {
	return s.run(ctx, func(c context.Context) error {
		return s.uc.SubmitLocation.Handle(c, commands.NewSubmitLocationCommand())
	})
}

// ShiftMonth handles POST /api/v1/wizard/calendar/month.
func (s *Server) ShiftMonth(ctx echo.Context) error {
	var req ShiftMonthRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewShiftMonthCommand(req.Delta)
	if err != nil {
		return badRequest(ctx, "Invalid month shift: "+err.Error())
	}

	return s.run(ctx, func(c context.Context) error {
		return s.uc.ShiftMonth.Handle(c, cmd)
	})
}

// SelectDate handles POST /api/v1/wizard/calendar/select.
func (s *Server) SelectDate(ctx echo.Context) error {
	var req SelectDateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	date, err := kernel.ParseDate(req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid date: "+err.Error())
	}
	cmd, err := commands.NewSelectDateCommand(date)
	if err != nil {
		return badRequest(ctx, "Invalid date: "+err.Error())
	}

	return s.run(ctx, func(c context.Context) error {
		return s.uc.SelectDate.Handle(c, cmd)
	})
}

// SubmitSchedule handles POST /api/v1/wizard/scheduling/next.
func (s *Server) SubmitSchedule(ctx echo.Context) error {
	return s.run(ctx, func(c context.Context) error {
		return s.uc.SubmitSchedule.Handle(c, commands.NewSubmitScheduleCommand())
	})
}

// FinishOrder handles POST /api/v1/wizard/observations/finish.
func (s *Server) FinishOrder(ctx echo.Context) error {
	var req FinishRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewFinalizeOrderCommand(req.Observations, req.Answer)
	return s.run(ctx, func(c context.Context) error {
		_, err := s.uc.FinalizeOrder.Handle(c, cmd)
		return err
	})
}

// GoBack handles POST /api/v1/wizard/back.
func (s *Server) GoBack(ctx echo.Context) error {
	return s.run(ctx, func(c context.Context) error {
		return s.uc.GoBack.Handle(c, commands.NewGoBackCommand())
	})
}

// Restart handles POST /api/v1/wizard/restart.
func (s *Server) Restart(ctx echo.Context) error {
	return s.run(ctx, func(c context.Context) error {
		return s.uc.Restart.Handle(c, commands.NewRestartCommand())
	})
}

func (s *Server) run(ctx echo.Context, action func(c context.Context) error) error {
	if err := action(ctx.Request().Context()); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWizard(ctx, http.StatusOK)
}

func (s *Server) respondWizard(ctx echo.Context, status int) error {
	view, err := s.uc.GetWizard.Handle(ctx.Request().Context(), queries.NewGetWizardQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toWizardDTO(view))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorDTO{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
