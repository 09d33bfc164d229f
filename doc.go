// Package teamdash provides the data model and reporting engine behind the
// `tdash` command-line tool, an integrated analytics and reporting view over
// three SaaS sources: monday.com (deals), Harvest (time tracking), and Xero
// (invoicing).
//
// The core functionalities include:
//   - Dataset Management: a snapshot of deals, time entries, and invoices,
//     persisted in a human-readable JSONL format, with a deterministic demo
//     dataset used whenever credentials or a snapshot are missing.
//   - Reports: billing by month or year, collections, time recorded per
//     team, deal profitability, and an auto-generated team scorecard
//     measured against configurable per-team targets.
//   - Targets: per-team revenue, collection, utilization, and profitability
//     targets loaded from a TOML file.
//
// Connector packages (monday, harvest, xero) fetch live data into a Dataset;
// the renderer package turns reports into markdown; the bootstrap package
// provisions the offline tool environment.
package teamdash
