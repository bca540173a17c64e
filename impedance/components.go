package impedance

// extract pulls one component out of a flat (N,2,2) array.
func extract(arr []float64, c Component) []float64 {
	if arr == nil {
		return nil
	}

	out := make([]float64, len(arr)/4)
	for f := range out {
		out[f] = arr[4*f+c.offset()]
	}

	return out
}

// extractComplex pulls one component out of a flat (N,2,2) complex array.
func extractComplex(arr []complex128, c Component) []complex128 {
	if arr == nil {
		return nil
	}

	out := make([]complex128, len(arr)/4)
	for f := range out {
		out[f] = arr[4*f+c.offset()]
	}

	return out
}

// TensorAt returns one tensor component per frequency in the display
// unit, nil when the tensor is absent.
func (t *Tensor) TensorAt(c Component) []complex128 {
	return extractComplex(t.Tensor(), c)
}

// ResAt returns the apparent resistivity of one component per frequency,
// nil when the underlying array is absent.
func (t *Tensor) ResAt(c Component) []float64 {
	return extract(t.Resistivity(), c)
}

// ResErrorAt returns the resistivity error of one component.
func (t *Tensor) ResErrorAt(c Component) []float64 {
	return extract(t.ResistivityError(), c)
}

// ResModelErrorAt returns the resistivity model error of one component.
func (t *Tensor) ResModelErrorAt(c Component) []float64 {
	return extract(t.ResistivityModelError(), c)
}

// PhaseAt returns the phase of one component per frequency, in degrees.
func (t *Tensor) PhaseAt(c Component) []float64 {
	return extract(t.Phase(), c)
}

// PhaseErrorAt returns the phase error of one component, in degrees.
func (t *Tensor) PhaseErrorAt(c Component) []float64 {
	return extract(t.PhaseError(), c)
}

// PhaseModelErrorAt returns the phase model error of one component.
func (t *Tensor) PhaseModelErrorAt(c Component) []float64 {
	return extract(t.PhaseModelError(), c)
}
