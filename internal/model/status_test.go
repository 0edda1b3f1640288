package model

import "testing"

func TestOrderStatus_IsOpen(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected bool
	}{
		{OrderStatusPending, true},
		{OrderStatusProcessing, true},
		{OrderStatusOnHold, true},
		{OrderStatusCompleted, false},
		{OrderStatusCancelled, false},
		{OrderStatusRefunded, false},
		{OrderStatusFailed, false},
		{OrderStatus("custom-status"), false},
	}

	for _, test := range tests {
		result := test.status.IsOpen()
		if result != test.expected {
			t.Errorf("OrderStatus(%s).IsOpen() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestOrderStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected bool
	}{
		{OrderStatusPending, false},
		{OrderStatusProcessing, false},
		{OrderStatusOnHold, false},
		{OrderStatusCompleted, true},
		{OrderStatusCancelled, true},
		{OrderStatusRefunded, true},
		{OrderStatusFailed, true},
		{OrderStatusTrash, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("OrderStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestOrderStatus_CanDelete(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected bool
	}{
		{OrderStatusCompleted, true},
		{OrderStatusPending, false},
		{OrderStatusProcessing, false},
		{OrderStatusCancelled, false},
		{OrderStatus("Completed"), false},
	}

	for _, test := range tests {
		result := test.status.CanDelete()
		if result != test.expected {
			t.Errorf("OrderStatus(%s).CanDelete() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestOrderStatus_String(t *testing.T) {
	status := OrderStatusOnHold
	expected := "on-hold"
	result := status.String()

	if result != expected {
		t.Errorf("OrderStatus.String() = %s, expected %s", result, expected)
	}
}
