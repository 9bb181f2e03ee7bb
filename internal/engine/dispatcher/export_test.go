package dispatcher

// StatusMap returns a copy of the internal target status map.
// This is exported for testing purposes only.
func (d *Dispatcher) StatusMap() map[string]TargetStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()

	statusMap := make(map[string]TargetStatus, len(d.status))
	for k, v := range d.status {
		statusMap[k] = v
	}
	return statusMap
}
