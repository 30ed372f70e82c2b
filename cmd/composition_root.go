package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	httpin "pickup/internal/adapters/in/http"
	"pickup/internal/adapters/out/clock"
	"pickup/internal/adapters/out/memory"
	"pickup/internal/adapters/out/notify"
	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	clock      *clock.SystemClock
	session    *memory.WizardSession
	dispatcher *commands.SubmissionDispatcher
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	sysClock := clock.NewSystemClock(config.Location)
	availability := schedule.NewAvailability(sysClock.Today(), config.BlockedDates)

	// The source is only touched while the session lock is held.
	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	w, err := wizard.New(config.Pricing, availability, rnd)
	if err != nil {
		return nil, fmt.Errorf("failed to create wizard: %w", err)
	}

	client, err := notify.NewClient(config.SubmitURL, config.SubmitTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create order client: %w", err)
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		clock:      sysClock,
		session:    memory.NewWizardSession(w),
		dispatcher: commands.NewSubmissionDispatcher(client, config.SubmitTimeout, logger),
	}, nil
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.session)
}

func (c *CompositionRoot) CreateRemoveLastItemCommandHandler() commands.RemoveLastItemCommandHandler {
	return commands.NewRemoveLastItemCommandHandler(c.session)
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.session)
}

func (c *CompositionRoot) CreateProceedToLocationCommandHandler() commands.ProceedToLocationCommandHandler {
	return commands.NewProceedToLocationCommandHandler(c.session)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.session)
}

func (c *CompositionRoot) CreateSubmitLocationCommandHandler() commands.SubmitLocationCommandHandler {
	return commands.NewSubmitLocationCommandHandler(c.session)
}

func (c *CompositionRoot) CreateShiftMonthCommandHandler() commands.ShiftMonthCommandHandler {
	return commands.NewShiftMonthCommandHandler(c.session)
}

func (c *CompositionRoot) CreateSelectDateCommandHandler() commands.SelectDateCommandHandler {
	return commands.NewSelectDateCommandHandler(c.session)
}

func (c *CompositionRoot) CreateSubmitScheduleCommandHandler() commands.SubmitScheduleCommandHandler {
	return commands.NewSubmitScheduleCommandHandler(c.session)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	return commands.NewFinalizeOrderCommandHandler(c.session, c.dispatcher)
}

func (c *CompositionRoot) CreateGoBackCommandHandler() commands.GoBackCommandHandler {
	return commands.NewGoBackCommandHandler(c.session)
}

func (c *CompositionRoot) CreateRestartCommandHandler() commands.RestartCommandHandler {
	return commands.NewRestartCommandHandler(c.session)
}

func (c *CompositionRoot) CreateRolloverDayCommandHandler() commands.RolloverDayCommandHandler {
	return commands.NewRolloverDayCommandHandler(c.session)
}

func (c *CompositionRoot) CreateGetWizardQueryHandler() queries.GetWizardQueryHandler {
	return queries.NewGetWizardQueryHandler(c.session)
}

func (c *CompositionRoot) CreateSuggestStreetsQueryHandler() queries.SuggestStreetsQueryHandler {
	return queries.NewSuggestStreetsQueryHandler()
}

func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.UseCases{
		AddItem:           c.CreateAddItemCommandHandler(),
		RemoveLastItem:    c.CreateRemoveLastItemCommandHandler(),
		UpdateItem:        c.CreateUpdateItemCommandHandler(),
		ProceedToLocation: c.CreateProceedToLocationCommandHandler(),
		UpdateLocation:    c.CreateUpdateLocationCommandHandler(),
		SubmitLocation:    c.CreateSubmitLocationCommandHandler(),
		ShiftMonth:        c.CreateShiftMonthCommandHandler(),
		SelectDate:        c.CreateSelectDateCommandHandler(),
		SubmitSchedule:    c.CreateSubmitScheduleCommandHandler(),
		FinalizeOrder:     c.CreateFinalizeOrderCommandHandler(),
		GoBack:            c.CreateGoBackCommandHandler(),
		Restart:           c.CreateRestartCommandHandler(),
		GetWizard:         c.CreateGetWizardQueryHandler(),
		SuggestStreets:    c.CreateSuggestStreetsQueryHandler(),
	})
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRolloverDayCommandHandler(), c.clock, c.config.Location, c.logger)
}

// WaitForSubmissions blocks until in-flight order submissions are done.
func (c *CompositionRoot) WaitForSubmissions() {
	c.dispatcher.Wait()
}
