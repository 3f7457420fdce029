package entity

import "time"

type ServiceType string

const (
	ServiceMobileCharging ServiceType = "mobile_charging"
	ServicePickupCharging ServiceType = "pickup_charging"
	ServiceRoadsideAssist ServiceType = "roadside_assistance"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceMobileCharging, ServicePickupCharging, ServiceRoadsideAssist:
		return true
	default:
		return false
	}
}

type BookingStatus string

const (
	StatusPending    BookingStatus = "PNR"
	StatusConfirmed  BookingStatus = "CNF"
	StatusAssigned   BookingStatus = "ASG"
	StatusInProgress BookingStatus = "INP"
	StatusCompleted  BookingStatus = "CMP"
	StatusCancelled  BookingStatus = "C"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CountsTowardCapacity reports whether a booking in this status still occupies
// its slot. Only cancelled bookings free capacity; in-progress and completed
// work stays counted until the slot window passes.
func (s BookingStatus) CountsTowardCapacity() bool {
	return s != StatusCancelled
}

func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Cancellable reports whether a rider/admin cancel is allowed from this status.
// Pending bookings are not cancelled through the lifecycle; the archival sweep
// relocates stale pending rows instead.
func (s BookingStatus) Cancellable() bool {
	switch s {
	case StatusConfirmed, StatusAssigned, StatusInProgress:
		return true
	default:
		return false
	}
}

type Actor string

const (
	ActorRider  Actor = "rider"
	ActorAdmin  Actor = "admin"
	ActorSystem Actor = "system"
)

// ServicePolicy parameterizes the shared booking lifecycle per service type:
// lead times, weekday closures, status-label mapping and numbering.
type ServicePolicy struct {
	Type            ServiceType
	NumberPrefix    string
	BasePrice       int64 // minor currency units
	CancelLead      time.Duration
	RescheduleLead  time.Duration
	ClosedWeekdays  []time.Weekday
	RescheduleLabel string // display label for a rescheduled confirmation
	ConfirmOnCreate bool   // true when there is no payment step before CNF
}

// OpenOn reports whether slots admit bookings on the given weekday.
func (p ServicePolicy) OpenOn(d time.Weekday) bool {
	for _, closed := range p.ClosedWeekdays {
		if closed == d {
			return false
		}
	}
	return true
}

type PolicySet map[ServiceType]ServicePolicy

// NewPolicySet builds the per-service policies. Base prices come from config,
// the rest of the rules are fixed business constants.
func NewPolicySet(mobileBase, pickupBase, roadsideBase int64) PolicySet {
	return PolicySet{
		ServiceMobileCharging: {
			Type:            ServiceMobileCharging,
			NumberPrefix:    "ODC",
			BasePrice:       mobileBase,
			CancelLead:      1 * time.Hour,
			RescheduleLead:  24 * time.Hour,
			RescheduleLabel: "RS",
		},
		ServicePickupCharging: {
			Type:            ServicePickupCharging,
			NumberPrefix:    "PDC",
			BasePrice:       pickupBase,
			CancelLead:      2 * time.Hour,
			RescheduleLead:  3 * time.Hour,
			ClosedWeekdays:  []time.Weekday{time.Sunday},
			RescheduleLabel: "RPD",
		},
		ServiceRoadsideAssist: {
			Type:            ServiceRoadsideAssist,
			NumberPrefix:    "RSA",
			BasePrice:       roadsideBase,
			RescheduleLabel: "RSB",
			ConfirmOnCreate: true,
		},
	}
}

func (ps PolicySet) Get(t ServiceType) (ServicePolicy, bool) {
	p, ok := ps[t]
	return p, ok
}
