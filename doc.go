// Package orcas resolves the identity of financial metrics, formats their
// values for display and computes comparative analytics over them.
//
// The core is made of pure, stateless parts:
//   - Normalize and NormalizeKey reduce free-form metric names to canonical
//     tokens, so "Return on Assets (ROA)" and "return_on_assets_roa" match.
//   - UnitTable is the unit override table, parsed from CSV.
//   - Resolver picks a UnitConfig from an ordered list of identity
//     candidates, the first match wins.
//   - Formatter renders values with the unit transform, precision and suffix.
//   - Classify derives the trend and significance of a change from the
//     metric polarity (benefit or cost).
//   - NewDelta and AverageSeries compute deltas and cross-series averages.
//
// Engine binds these to the reference data (unit table and metrics catalog,
// loaded once by LoadReference) and builds the historical, simulation and
// compare reports consumed by the renderer package and the orcas command.
package orcas
