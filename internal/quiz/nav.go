package quiz

// ButtonState is the display state of one navigation button.
type ButtonState struct {
	Visibility Visibility
	Enabled    bool
}

// NavState is the display state of the previous, next and submit buttons.
type NavState struct {
	Prev   ButtonState
	Next   ButtonState
	Submit ButtonState
}

// NavigationButtons computes the button layout for position index of count
// questions. Moving on or submitting never requires an answer.
func NavigationButtons(index, count int) NavState {
	if index == count-1 {
		return NavState{
			Prev:   ButtonState{Visibility: Hidden},
			Next:   ButtonState{Visibility: Hidden},
			Submit: ButtonState{Visibility: Flex, Enabled: true},
		}
	}
	return NavState{
		Prev:   ButtonState{Visibility: Flex, Enabled: index != 0},
		Next:   ButtonState{Visibility: Flex, Enabled: true},
		Submit: ButtonState{Visibility: Hidden},
	}
}

func (n NavState) apply(v ViewBinding) {
	buttons := []struct {
		el Element
		b  ButtonState
	}{
		{ElementPrevButton, n.Prev},
		{ElementNextButton, n.Next},
		{ElementSubmitButton, n.Submit},
	}
	for _, btn := range buttons {
		v.SetVisibility(btn.el, btn.b.Visibility)
		v.SetEnabled(btn.el, btn.b.Enabled)
	}
}
