// Package pagectl provides client-side state for paginated listings.
//
// Overview
//
// A listing endpoint returns one page of a result set together with the
// totals needed to navigate it (Page). pagectl keeps those counters in a
// Controller and derives from them:
//   - State: the current page, page size, element and page counts.
//   - DisplayRange: the compressed sequence of page buttons and ellipsis
//     markers to render, e.g. [0 ... 8 9 10 11 12 ... 19].
//   - Navigation guards: GoToPage, PrevPage and NextPage forward a page
//     index to the caller only when it is within bounds.
//
// The controller performs no I/O. Pages are fetched by the caller (see the
// rest package) and fed back through Controller.UpdateState.
//
// See examples/listing for an end-to-end walk over a paginated endpoint.
package pagectl
