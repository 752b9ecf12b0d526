package colony

// CanActivate reports whether a facility is eligible to be considered for
// scheduling at all (§4.2).
//
// Factories with enough inputs but not yet active deliberately return false
// here: the "run immediately" intent is instead signalled by NextRunTime
// returning (zero, false), which Schedule interprets as "now + 1s". This
// mirrors the source behaviour called out in §9 Open Question 1 — do not
// simplify this without updating Schedule's interpretation to match.
func CanActivate(f *Facility) bool {
	switch f.Kind {
	case KindExtractor:
		return f.IsActive && f.Extractor != nil && f.Extractor.ProductType != nil
	case KindFactory:
		if f.Factory == nil || f.Factory.Schematic == nil {
			return false
		}
		if f.IsActive {
			return true
		}
		if f.Factory.HasReceivedInputs || f.Factory.ReceivedInputsLastCycle {
			return true
		}
		return !hasEnoughInputs(f)
	case KindStorage, KindLaunchpad, KindCommandCenter:
		return true
	default:
		return false
	}
}

// IsActive reports the facility's effective active state (§4.2).
func IsActive(f *Facility) bool {
	switch f.Kind {
	case KindExtractor:
		return f.IsActive && f.Extractor != nil && f.Extractor.ProductType != nil
	case KindFactory:
		return f.IsActive
	default:
		return true
	}
}

// IsConsumer reports whether f can accept routed inputs as a recipe
// consumer. Only Factory is a consumer.
func IsConsumer(f *Facility) bool {
	return f.Kind == KindFactory
}

// IsStorage reports whether f is one of the storage-class variants.
func IsStorage(f *Facility) bool {
	switch f.Kind {
	case KindStorage, KindLaunchpad, KindCommandCenter:
		return true
	default:
		return false
	}
}

// CanRun reports whether f is eligible to actually execute a production
// step. Storage-class facilities never run (§4.2: "excluded from can_run").
func CanRun(f *Facility) bool {
	if IsStorage(f) {
		return false
	}
	return CanActivate(f) || IsActive(f) || (f.Kind == KindFactory && hasEnoughInputs(f))
}

// hasEnoughInputs reports whether every required input of a factory's
// schematic is present in sufficient quantity in its contents buffer.
func hasEnoughInputs(f *Facility) bool {
	if f.Kind != KindFactory || f.Factory == nil || f.Factory.Schematic == nil {
		return false
	}
	for typeID, required := range f.Factory.Schematic.Inputs() {
		if f.Contents[typeID.TypeID()] < int64(required) {
			return false
		}
	}
	return true
}
