// Package exchange models a minimal stock exchange: a registry of shares,
// each owning an append-only ledger of trades, and the read-only financial
// metrics derived from that ledger.
//
// The core functionalities include:
//   - Trade Recording: Appending immutable, timestamped trade records
//     (quantity, buy/sell side, price) to a share's ledger. Recording is the
//     only mutation; trades are never reordered, amended, or pruned, so the
//     full history remains available for audit.
//   - Per-Share Metrics: Dividend yield (common and preferred formulas),
//     price/earnings ratio, and the volume-weighted average price over a
//     trailing time window.
//   - Market Index: The geometric mean of every trade price recorded across
//     the exchange, computed through a sum of logarithms so that large trade
//     histories do not overflow.
//   - Exact Arithmetic: Prices, dividends, and quantities are typed decimal
//     values; metric computations never round through binary floating point
//     except where the geometric mean requires it.
//
// All computations are synchronous and pure: they either return a value or an
// error, never a NaN or an infinity. Shares and the exchange registry are
// safe for concurrent use; a metric always observes a consistent snapshot of
// the trade ledger.
package exchange
