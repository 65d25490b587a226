package quiz

import (
	"errors"
	"testing"

	"github.com/playperu/wordballoon/internal/rng"
	"github.com/playperu/wordballoon/internal/vocab"
)

func catalog(t *testing.T) *vocab.Catalog {
	t.Helper()
	c, err := vocab.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return c
}

func TestNewSessionShape(t *testing.T) {
	c := catalog(t)
	src := rng.NewSeeded(42)

	for trial := 0; trial < 200; trial++ {
		s := NewSession(c, src)
		if len(s.Questions) != QuestionCount {
			t.Fatalf("questions = %d, want %d", len(s.Questions), QuestionCount)
		}
		for qi, q := range s.Questions {
			if len(q.Options) != OptionCount {
				t.Fatalf("q%d options = %d, want %d", qi, len(q.Options), OptionCount)
			}
			ids := map[string]bool{}
			hasTarget := false
			for _, o := range q.Options {
				ids[o.ID] = true
				if o.ID == q.Target.ID {
					hasTarget = true
				}
			}
			if len(ids) != OptionCount {
				t.Fatalf("q%d options not distinct: %v", qi, q.Options)
			}
			if !hasTarget {
				t.Fatalf("q%d options missing target %s", qi, q.Target.ID)
			}
		}
		if s.ID == "" || s.Index != 0 || s.Score != 0 || s.Answered || s.Finished {
			t.Fatalf("fresh session state = %+v", s)
		}
	}
}

func TestNewSessionMinimalCatalog(t *testing.T) {
	c, err := vocab.New([]vocab.Item{
		{ID: "a", Word: "a", Rarity: vocab.Common},
		{ID: "b", Word: "b", Rarity: vocab.Rare},
		{ID: "c", Word: "c", Rarity: vocab.SuperRare},
		{ID: "d", Word: "d", Rarity: vocab.UltraRare},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Values near 1 would spin forever in a rejection-sampling loop.
	s := NewSession(c, &rng.Sequence{Values: []float64{0.999}})
	for _, q := range s.Questions {
		if len(q.Options) != OptionCount {
			t.Fatalf("options = %v", q.Options)
		}
	}
}

func TestTargetPositionUniform(t *testing.T) {
	const n = 30000
	c := catalog(t)
	src := rng.NewSeeded(9)
	var pos [OptionCount]int
	for i := 0; i < n/QuestionCount; i++ {
		for _, q := range NewSession(c, src).Questions {
			for j, o := range q.Options {
				if o.ID == q.Target.ID {
					pos[j]++
				}
			}
		}
	}
	for j, cnt := range pos {
		freq := float64(cnt) / n
		if diff := freq - 1.0/OptionCount; diff > 0.015 || diff < -0.015 {
			t.Errorf("target at slot %d freq=%f, want ~1/3", j, freq)
		}
	}
}

func findWrong(q Question) string {
	for _, o := range q.Options {
		if o.ID != q.Target.ID {
			return o.ID
		}
	}
	return ""
}

func TestAnswer(t *testing.T) {
	s := NewSession(catalog(t), rng.NewSeeded(1))

	q := s.Current()
	out, err := s.Answer(q.Target.ID)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !out.Correct || s.Score != 1 || !s.Answered {
		t.Fatalf("after correct answer: out=%+v session=%+v", out, s)
	}

	if _, err := s.Answer(q.Target.ID); !errors.Is(err, ErrAnswered) {
		t.Fatalf("second answer err = %v, want ErrAnswered", err)
	}
	if s.Score != 1 {
		t.Errorf("score changed on repeated answer: %d", s.Score)
	}

	if !s.Advance() {
		t.Fatal("Advance should move to question 2")
	}
	if s.Answered || s.Index != 1 {
		t.Fatalf("after advance: %+v", s)
	}

	wrong := findWrong(s.Current())
	out, err = s.Answer(wrong)
	if err != nil {
		t.Fatal(err)
	}
	if out.Correct || out.Picked.ID != wrong || out.Target.ID != s.Current().Target.ID {
		t.Errorf("wrong answer outcome = %+v", out)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
}

func TestAnswerUnknownOption(t *testing.T) {
	s := NewSession(catalog(t), rng.NewSeeded(1))
	if _, err := s.Answer("not-an-option"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("err = %v, want ErrUnknownOption", err)
	}
	if s.Answered {
		t.Error("unknown option must not mark the question answered")
	}
}

func TestAdvanceFinishes(t *testing.T) {
	s := NewSession(catalog(t), rng.NewSeeded(5))
	for i := 0; i < QuestionCount-1; i++ {
		if !s.Advance() {
			t.Fatalf("advance %d returned false", i)
		}
	}
	if s.Advance() {
		t.Fatal("advance past last question returned true")
	}
	if !s.Finished {
		t.Fatal("session should be finished")
	}
	if _, err := s.Answer(s.Current().Target.ID); !errors.Is(err, ErrFinished) {
		t.Errorf("answer after finish err = %v", err)
	}
}

func TestReward(t *testing.T) {
	want := map[int]int{0: 0, 1: 20, 2: 40, 3: 60, 4: 80, 5: 150}
	for score, w := range want {
		if got := Reward(score); got != w {
			t.Errorf("Reward(%d) = %d, want %d", score, got, w)
		}
	}
}

func TestFanfare(t *testing.T) {
	for score := 0; score <= QuestionCount; score++ {
		if got, want := Fanfare(score), score >= 3; got != want {
			t.Errorf("Fanfare(%d) = %v, want %v", score, got, want)
		}
	}
}
