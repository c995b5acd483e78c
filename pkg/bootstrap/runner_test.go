package bootstrap

// fakeRunner records every action instead of spawning processes. An optional
// failWhen predicate makes a matching Foreground call fail with failErr.
type fakeRunner struct {
	foreground []Action
	replaced   []Action

	failWhen func(Action) bool
	failErr  error
}

func (f *fakeRunner) Foreground(a Action) error {
	f.foreground = append(f.foreground, a)
	if f.failWhen != nil && f.failWhen(a) {
		return f.failErr
	}
	return nil
}

func (f *fakeRunner) Replace(a Action) error {
	f.replaced = append(f.replaced, a)
	return nil
}
