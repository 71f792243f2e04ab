package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/its-aleezA/cpu-scheduling-simulator/config"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/requests"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// RegisterRoutes mounts the scheduler endpoints under router.
func RegisterRoutes(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/v1")
	{
		v1.Get("/policies", handler.Policies)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/priority-preemptive", handler.PreemptivePriority)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJFNonPreemptive)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJFPreemptive)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	response, err := schedulers.ScheduleAll(ctx.UserContext(), request)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	policies := make([]fiber.Map, 0, len(schedulers.Policies()))
	for _, policy := range schedulers.Policies() {
		policies = append(policies, fiber.Map{
			"id":            int(policy),
			"name":          policy.String(),
			"title":         policy.Title(),
			"preemptive":    policy.Preemptive(),
			"uses_priority": policy.UsesPriority(),
		})
	}
	return ctx.JSON(fiber.Map{"policies": policies, "default": s.config.DefaultPolicy})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	response, err := schedulers.Schedule(ctx.UserContext(), policy, request)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	var invalid *requests.InvalidProcessError
	if errors.Is(err, requests.ErrNoProcesses) || errors.As(err, &invalid) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
}
