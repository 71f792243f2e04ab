package schedulers

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/its-aleezA/cpu-scheduling-simulator/internal/core"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/requests"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/responses"
	"github.com/its-aleezA/cpu-scheduling-simulator/internal/tracing"
)

// Schedule validates request, simulates it under policy and builds the response.
// The request itself is not modified.
func Schedule(ctx context.Context, policy Policy, request *requests.ScheduleRequests) (response responses.ScheduleResponse, err error) {
	if !policy.Valid() {
		return response, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
	if request == nil {
		return response, requests.ErrNoProcesses
	}
	runRequest := *request
	runRequest.Jobs = append([]requests.Job(nil), request.Jobs...)
	if err = runRequest.Normalize(); err != nil {
		return response, err
	}
	if !policy.UsesPriority() {
		runRequest = runRequest.WithoutPriority()
	}

	runId := uuid.New().String()
	_, span := tracing.StartSpan(ctx, "schedule."+policy.String())
	span.WithAttributes(
		attribute.String("run.id", runId),
		attribute.String("policy", policy.String()),
		attribute.Int("processes", len(runRequest.Jobs)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	log.Println("running", policy.Title(), "with", len(runRequest.Jobs), "processes")
	result, err := Run(policy, core.NewProccesses(runRequest.Jobs))
	if err != nil {
		return response, err
	}
	span.WithAttributes(
		attribute.Int("total_time", result.MaxCompletionTime),
		attribute.Int("intervals", len(result.Timeline)),
	)

	response = generateResponse(result)
	response.RunId = runId
	debugLog.Printf("response is: %+v", response)
	return response, nil
}

// ScheduleAll runs every policy over the same request, each on its own copy.
func ScheduleAll(ctx context.Context, request *requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	all := make([]responses.ScheduleResponse, 0, len(Policies()))
	for _, policy := range Policies() {
		response, err := Schedule(ctx, policy, request)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", policy, err)
		}
		all = append(all, response)
	}
	return all, nil
}
