package speech

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

// fakeResolver writes a recognizable artifact per text, failing texts that
// start with "fail" and skipping texts that normalize to nothing.
type fakeResolver struct {
	inflight int32
	peak     int32
	delay    time.Duration
}

func (f *fakeResolver) Resolve(ctx context.Context, text, language, outputPath string) (string, error) {
	cur := atomic.AddInt32(&f.inflight, 1)
	defer atomic.AddInt32(&f.inflight, -1)
	for {
		old := atomic.LoadInt32(&f.peak)
		if cur <= old || atomic.CompareAndSwapInt32(&f.peak, old, cur) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	if Normalize(text) == "" {
		return "", nil
	}
	if strings.HasPrefix(text, "fail") {
		return "", ErrSynthesisFailed
	}
	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return "", err
	}
	return outputPath, nil
}

func TestSynthesizeOrdering(t *testing.T) {
	units := make([]Unit, 8)
	for i := range units {
		units[i] = Unit{Page: i + 1, Text: fmt.Sprintf("第%d页的内容。", i+1)}
	}

	f := &fakeResolver{delay: 5 * time.Millisecond}
	s := NewScheduler(f, logger.New("error"), 4)

	results, err := s.Synthesize(context.Background(), units, "zh-cn", t.TempDir())
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(results) != 8 {
		t.Fatalf("len(results) = %d, want 8", len(results))
	}

	for i, r := range results {
		if r.Page != i+1 {
			t.Errorf("results[%d].Page = %d, want %d (page order regardless of completion order)", i, r.Page, i+1)
		}
	}

	if peak := atomic.LoadInt32(&f.peak); peak > 4 {
		t.Errorf("peak concurrency = %d, want <= 4", peak)
	}
}

func TestSynthesizeDropsFailedUnits(t *testing.T) {
	units := []Unit{
		{Page: 1, Text: "正常一。"},
		{Page: 2, Text: "fail 这页不行"},
		{Page: 3, Text: "正常二。"},
		{Page: 4, Text: "fail 这页也不行"},
		{Page: 5, Text: "正常三。"},
	}

	s := NewScheduler(&fakeResolver{}, logger.New("error"), 2)
	results, err := s.Synthesize(context.Background(), units, "zh-cn", t.TempDir())
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	wantPages := []int{1, 3, 5}
	for i, r := range results {
		if r.Page != wantPages[i] {
			t.Errorf("results[%d].Page = %d, want %d", i, r.Page, wantPages[i])
		}
	}
}

func TestSynthesizeAllFail(t *testing.T) {
	units := []Unit{
		{Page: 1, Text: "fail 一"},
		{Page: 2, Text: "fail 二"},
	}

	s := NewScheduler(&fakeResolver{}, logger.New("error"), 2)
	_, err := s.Synthesize(context.Background(), units, "zh-cn", t.TempDir())
	if err != ErrNoNarration {
		t.Errorf("err = %v, want ErrNoNarration", err)
	}
}

func TestSynthesizeEmptyUnits(t *testing.T) {
	s := NewScheduler(&fakeResolver{}, logger.New("error"), 2)
	results, err := s.Synthesize(context.Background(), nil, "zh-cn", t.TempDir())
	if err != nil || results != nil {
		t.Errorf("Synthesize(nil) = (%v, %v), want (nil, nil)", results, err)
	}
}

func TestAlignPadsGaps(t *testing.T) {
	// 5 slides, pages 2 and 4 failed: gaps reuse the nearest prior artifact.
	results := []Result{
		{Page: 1, Path: "a1.mp3"},
		{Page: 3, Path: "a3.mp3"},
		{Page: 5, Path: "a5.mp3"},
	}

	aligned := Align(results, 5)
	if len(aligned) != 5 {
		t.Fatalf("len(aligned) = %d, want 5", len(aligned))
	}

	want := []string{"a1.mp3", "a1.mp3", "a3.mp3", "a3.mp3", "a5.mp3"}
	for i, r := range aligned {
		if r.Page != i+1 {
			t.Errorf("aligned[%d].Page = %d, want %d", i, r.Page, i+1)
		}
		if r.Path != want[i] {
			t.Errorf("aligned[%d].Path = %s, want %s", i, r.Path, want[i])
		}
	}
}

func TestAlignLeadingGap(t *testing.T) {
	results := []Result{{Page: 3, Path: "a3.mp3"}}

	aligned := Align(results, 3)
	for i, r := range aligned {
		if r.Path != "a3.mp3" {
			t.Errorf("aligned[%d].Path = %s, want a3.mp3", i, r.Path)
		}
	}
}

func TestAlignTruncates(t *testing.T) {
	results := []Result{
		{Page: 1, Path: "a1.mp3"},
		{Page: 2, Path: "a2.mp3"},
		{Page: 3, Path: "a3.mp3"},
	}

	aligned := Align(results, 2)
	if len(aligned) != 2 {
		t.Fatalf("len(aligned) = %d, want 2", len(aligned))
	}
	if aligned[1].Path != "a2.mp3" {
		t.Errorf("aligned[1].Path = %s, want a2.mp3", aligned[1].Path)
	}
}

func TestAlignEmpty(t *testing.T) {
	if got := Align(nil, 3); got != nil {
		t.Errorf("Align(nil) = %v, want nil", got)
	}
	if got := Align([]Result{{Page: 1, Path: "a"}}, 0); got != nil {
		t.Errorf("Align(_, 0) = %v, want nil", got)
	}
}
