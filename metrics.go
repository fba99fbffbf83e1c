package legendfmt

// SampleMetrics holds caller-computed goodness-of-fit values for one
// fitted sample. This package computes no statistics; a nil field
// simply leaves that metric blank in the label.
type SampleMetrics struct {
	R2   *float64
	Chi2 *float64
	RMSE *float64
}

// Include selects which metrics appear in legend labels.
type Include struct {
	R2   bool
	Chi2 bool
	RMSE bool
}

var metricNames = [...]string{`$R^{2}$`, `$\chi^{2}$`, `RMSE`}

// MetricLabels builds one aligned legend label per sample. Each label
// is a multi-line block, one line per included metric, with the metric
// values vertically aligned. A nil include enables every metric.
func MetricLabels(samples []SampleMetrics, include *Include, rounding int) ([]string, error) {
	inc := Include{R2: true, Chi2: true, RMSE: true}
	if include != nil {
		inc = *include
	}
	labels := make([]string, len(samples))
	for i, s := range samples {
		var ms []Measurement
		if inc.R2 {
			ms = append(ms, Measurement{Name: metricNames[0], Value: s.R2})
		}
		if inc.Chi2 {
			ms = append(ms, Measurement{Name: metricNames[1], Value: s.Chi2})
		}
		if inc.RMSE {
			ms = append(ms, Measurement{Name: metricNames[2], Value: s.RMSE})
		}
		label, err := Render(ms, rounding)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}
