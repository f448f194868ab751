package task

// Point converts a row of the task's column to the complex plane
func (t *Task) Point(row int) (float64, float64) {
	return t.MinReal + float64(t.Column)*t.RealFactor, t.MinImaginary + float64(row)*t.ImaginaryFactor
}
