// Package timezone centralizes time handling so stay dates and sync
// timestamps are always interpreted in the configured application timezone.
//
// Usage:
//
//  1. Current time and conversion:
//     now := timezone.Now()                    // current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // convert any time to app timezone
//
//  2. Formatting (sync watermarks, booking responses):
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing date-only values (check-in, check-out):
//     t, err := timezone.Parse("2006-01-02", "2026-03-14")
//
//  4. Location access:
//     loc := timezone.GetLocation()
//
// The timezone comes from the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use standard IANA names
// ("UTC", "America/Sao_Paulo", "Europe/London"); abbreviations are not
// supported.
package timezone
