package advisor

import (
	"context"
	"encoding/json"
	"testing"
)

func TestJobLifecycle(t *testing.T) {
	db := openTestDB(t)
	jobs := NewJobs(db)
	ctx := context.Background()

	job := &Job{ID: "01TESTJOB0000000000000000A", FromArea: "شبرا", ToArea: "المعادي", Status: JobQueued}
	if err := jobs.Create(ctx, job); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := jobs.MarkRunning(ctx, job.ID); err != nil {
		t.Fatalf("mark running: %v", err)
	}
	got, err := jobs.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != JobRunning {
		t.Fatalf("expected running, got %s", got.Status)
	}

	encoded, err := json.Marshal([]Result{AIResult{Content: "إجابة", Source: SourceLive}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := jobs.MarkSucceeded(ctx, job.ID, string(encoded)); err != nil {
		t.Fatalf("mark succeeded: %v", err)
	}

	got, err = jobs.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != JobSucceeded {
		t.Fatalf("expected succeeded, got %s", got.Status)
	}
	if got.ResultJSON == nil || *got.ResultJSON == "" {
		t.Fatalf("expected results stored on the job row")
	}
	if got.Error != nil {
		t.Fatalf("error should be cleared on success")
	}
}

func TestMarkRunning_OnlyFromQueued(t *testing.T) {
	db := openTestDB(t)
	jobs := NewJobs(db)
	ctx := context.Background()

	job := &Job{ID: "01TESTJOB0000000000000000B", FromArea: "أ", ToArea: "ب", Status: JobFailed}
	if err := jobs.Create(ctx, job); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := jobs.MarkRunning(ctx, job.ID); err != nil {
		t.Fatalf("mark running: %v", err)
	}
	got, err := jobs.Get(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != JobFailed {
		t.Fatalf("non-queued job must not transition, got %s", got.Status)
	}
}

func TestResultJSON_TaggedVariants(t *testing.T) {
	blob, err := json.Marshal([]Result{
		DBResult{TotalPrice: 15, TotalTime: 45, Tag: "الأرخص", Steps: []string{"خطوة"}},
		AIResult{Content: "إجابة", Source: SourceCache},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded[0]["type"] != "db" {
		t.Fatalf("expected db tag, got %v", decoded[0]["type"])
	}
	if decoded[1]["type"] != "ai" || decoded[1]["source"] != "cache" {
		t.Fatalf("expected tagged ai result, got %v", decoded[1])
	}
}
