// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// Stay dates (check-in/check-out) are calendar dates and are parsed with the
// constant.DayFormat layout; the hotel's wall clock is what the app timezone
// describes.
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use standard IANA timezone database
// names for reliable cross-platform behavior.
package timezone
