// Package options normalizes the selectable option lists that drive dynamic
// form fields (radio groups, multi-select toggles, select controls).
//
// Backend metadata describes a field's options in one of four shapes:
//
//   - no value at all (nil);
//   - an already canonical list of {value, label} records;
//   - a generic sequence of records or scalars, where records may use legacy
//     keys such as id/code/name/group_name;
//   - a text value, either a JSON encoded array or a "code:label,code:label"
//     list.
//
// Classify maps a raw value onto the closed Input union and Normalize turns it
// into a List. Normalization never fails: anything it cannot interpret becomes
// an empty list and a warning is logged through zap. The derived helpers
// (LabelFor, LabelsFor, GroupBy, IsEmpty, Filter) operate on the normalized
// form and return fresh values, so a List can be shared freely between
// goroutines as long as callers do not mutate it.
package options
