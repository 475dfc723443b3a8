package metrics

// IncrementTemplateCreated increments template creation counter
func (m *Metrics) IncrementTemplateCreated() {
	m.safeExecute("IncrementTemplateCreated", func() {
		m.TemplateCreatedTotal.Inc()
	})
}

// IncrementMeetingCreated increments meeting creation counter
func (m *Metrics) IncrementMeetingCreated() {
	m.safeExecute("IncrementMeetingCreated", func() {
		m.MeetingCreatedTotal.Inc()
	})
}

// SetTemplatesTotal sets total templates gauge
func (m *Metrics) SetTemplatesTotal(count int64) {
	m.safeExecute("SetTemplatesTotal", func() {
		m.TemplatesTotal.Set(float64(count))
	})
}

// SetMeetingsTotal sets total meetings gauge
func (m *Metrics) SetMeetingsTotal(count int64) {
	m.safeExecute("SetMeetingsTotal", func() {
		m.MeetingsTotal.Set(float64(count))
	})
}

// SetTrackingListsTotal sets total tracking lists gauge
func (m *Metrics) SetTrackingListsTotal(count int64) {
	m.safeExecute("SetTrackingListsTotal", func() {
		m.TrackingListsTotal.Set(float64(count))
	})
}

// SetAttachmentsTotal sets total attachments gauge
func (m *Metrics) SetAttachmentsTotal(count int64) {
	m.safeExecute("SetAttachmentsTotal", func() {
		m.AttachmentsTotal.Set(float64(count))
	})
}
