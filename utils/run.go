package utils

// Runnable is one step of a sequence run by Run.
type Runnable func() error

func ToRunnable2[T1, T2 any](f func(T1, T2) error, a T1, b T2) Runnable {
	return func() error {
		return f(a, b)
	}
}

// Run runs rs in order and stops at the first error.
func Run(rs ...Runnable) error {
	for _, r := range rs {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}
