package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePolicy(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      Policy
		wantErr     bool
	}{
		{description: "name", input: "fcfs", expect: FCFS},
		{description: "upper case", input: "SJF", expect: SJFNonPreemptive},
		{description: "alias", input: "sjf-preemptive", expect: SJFPreemptive},
		{description: "underscore alias", input: "priority_non_preemptive", expect: PriorityNonPreemptive},
		{description: "menu number", input: "5", expect: PriorityPreemptive},
		{description: "padded", input: " srtf ", expect: SJFPreemptive},
		{description: "menu out of range", input: "6", wantErr: true},
		{description: "unknown", input: "round-robin", wantErr: true},
	}

	for _, testCase := range testCases {
		actual, err := ParsePolicy(testCase.input)
		if testCase.wantErr {
			assert.ErrorIs(t, err, ErrUnknownPolicy, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestPolicy_Properties(t *testing.T) {
	assert.Len(t, Policies(), 5)
	for _, policy := range Policies() {
		assert.True(t, policy.Valid())
		assert.NotEmpty(t, policy.Title())
		parsed, err := ParsePolicy(policy.String())
		assert.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}
	assert.True(t, PriorityPreemptive.UsesPriority())
	assert.False(t, SJFPreemptive.UsesPriority())
	assert.True(t, SJFPreemptive.Preemptive())
	assert.False(t, FCFS.Preemptive())
	assert.False(t, Policy(0).Valid())
	assert.Equal(t, "Policy(9)", Policy(9).String())
}
