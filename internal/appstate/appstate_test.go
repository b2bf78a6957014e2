package appstate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabState_Select(t *testing.T) {
	t.Run("Starts on home", func(t *testing.T) {
		s := NewTabState()
		assert.Equal(t, TabHome, s.Selected)
	})

	t.Run("Switches tabs", func(t *testing.T) {
		s := NewTabState()

		err := s.Select(TabStores)

		assert.NoError(t, err)
		assert.Equal(t, TabStores, s.Selected)
	})

	t.Run("Rejects unknown tab", func(t *testing.T) {
		s := NewTabState()

		err := s.Select(Tab("settings"))

		assert.ErrorIs(t, err, ErrInvalidTab)
		assert.Equal(t, TabHome, s.Selected)
	})
}

func TestSplashState(t *testing.T) {
	t.Run("Done after configured ticks", func(t *testing.T) {
		s := NewSplashState(3)

		s.Tick()
		assert.False(t, s.Done())
		s.Tick()
		assert.False(t, s.Done())
		s.Tick()
		assert.True(t, s.Done())
	})

	t.Run("Extra ticks do not accumulate", func(t *testing.T) {
		s := NewSplashState(2)

		for i := 0; i < 10; i++ {
			s.Tick()
		}

		assert.Equal(t, 2, s.ElapsedTicks)
		assert.Equal(t, 1.0, s.Progress())
	})

	t.Run("Skip finishes immediately", func(t *testing.T) {
		s := NewSplashState(5)

		s.Skip()

		assert.True(t, s.Done())
		assert.Equal(t, 1.0, s.Progress())
	})
}

func testSlides() []Slide {
	return []Slide{
		{ImageName: "tile", Title: "Your dream kitchen.", Subtitle: "Our unbelievable prices.", Button: "Shop Kitchen"},
		{ImageName: "carouselCabinets", Button: "Shop Cabinets"},
		{ImageName: "carouselVinyl", Button: "Shop Vinyl"},
	}
}

func TestCarouselState(t *testing.T) {
	t.Run("Tick advances with wrap-around", func(t *testing.T) {
		s := NewCarouselState(testSlides())

		s.Tick()
		assert.Equal(t, 1, s.Index)
		s.Tick()
		assert.Equal(t, 2, s.Index)
		s.Tick()
		assert.Equal(t, 0, s.Index)
	})

	t.Run("Select holds through the next tick", func(t *testing.T) {
		s := NewCarouselState(testSlides())

		assert.NoError(t, s.Select(2))
		assert.Equal(t, 2, s.Index)

		s.Tick()
		assert.Equal(t, 2, s.Index)
		s.Tick()
		assert.Equal(t, 0, s.Index)
	})

	t.Run("Select out of range", func(t *testing.T) {
		s := NewCarouselState(testSlides())

		assert.ErrorIs(t, s.Select(3), ErrInvalidSlide)
		assert.ErrorIs(t, s.Select(-1), ErrInvalidSlide)
	})

	t.Run("Empty carousel ignores ticks", func(t *testing.T) {
		s := NewCarouselState(nil)

		s.Tick()

		assert.Equal(t, 0, s.Index)
		assert.Nil(t, s.Current())
	})
}

func TestSignUpFlow(t *testing.T) {
	fillAccount := func(f *SignUpFlow) {
		f.Email = "jane@example.com"
		f.Password = "hunter22"
		f.ConfirmPassword = "hunter22"
		f.FirstName = "Jane"
		f.LastName = "Doe"
	}

	t.Run("Account step requires matching passwords", func(t *testing.T) {
		f := NewSignUpFlow()
		fillAccount(f)
		f.ConfirmPassword = "different"

		assert.ErrorIs(t, f.Next(), ErrStepIncomplete)
		assert.Equal(t, StepAccount, f.Step)
	})

	t.Run("Walks every step to completion", func(t *testing.T) {
		f := NewSignUpFlow()
		fillAccount(f)

		assert.NoError(t, f.Next())
		assert.Equal(t, StepPersona, f.Step)

		// persona and preferences never block
		assert.NoError(t, f.Next())
		assert.NoError(t, f.Next())
		assert.Equal(t, StepTerms, f.Step)

		assert.ErrorIs(t, f.Next(), ErrStepIncomplete)

		f.AgreedToTerms = true
		assert.NoError(t, f.Next())
		assert.True(t, f.Completed)
		assert.Equal(t, 1.0, f.Progress())

		assert.ErrorIs(t, f.Next(), ErrFlowComplete)
	})

	t.Run("Back stops at the first step", func(t *testing.T) {
		f := NewSignUpFlow()
		fillAccount(f)
		assert.NoError(t, f.Next())

		f.Back()
		assert.Equal(t, StepAccount, f.Step)
		f.Back()
		assert.Equal(t, StepAccount, f.Step)
	})
}

func TestState_Serialization(t *testing.T) {
	s := NewCarouselState(testSlides())
	assert.NoError(t, s.Select(1))

	raw, err := json.Marshal(s)
	assert.NoError(t, err)

	var restored CarouselState
	assert.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, 1, restored.Index)
	assert.True(t, restored.Hold)
	assert.Len(t, restored.Slides, 3)
}
