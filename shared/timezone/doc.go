// Package timezone keeps the two timezones an application works with: the current zone,
// used to display and manipulate dates, and the storage zone, used when dates are persisted.
//
// Usage Examples:
//
//  1. Create the context once at startup and inject it:
//     tz, err := timezone.New("UTC")
//
//  2. Switch zones at any point:
//     err = tz.SetCurrent(timezone.Name("Europe/Brussels"))
//     err = tz.SetStorage(timezone.Offset(0))
//
//  3. Convert an existing instant (the instant is kept, only the zone changes):
//     shown, _ := tz.ToCurrent(timezone.Instant(storedAt))
//
//  4. Construct a date from a raw value anchored in a zone:
//     noon, _ := tz.ToStorage(timezone.Raw("2024-06-01 12:00:00"))
//
//  5. Get the current instant in the current zone:
//     now := tz.Now()
//
// Supported timezone formats:
//   - IANA names: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//   - Fixed offsets: "+02:00", "-0530", "+2", "UTC+8", "GMT-03:30", or Offset values in hours such as Offset(5.5)
//
// The IANA database is embedded, so resolution does not depend on the host's zoneinfo files.
package timezone
