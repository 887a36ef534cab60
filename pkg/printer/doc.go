// Package printer implements the printer endpoint and its driver
// lifecycle.
//
// A Printer owns an IPP capability set and, once a driver is attached,
// the driver instance itself. Driver attachment is one critical section:
// the requested keyword is resolved, the driver is built, and media and
// resolution capabilities are synthesized into a scratch copy of the
// capability set that is swapped in only on success. Observers therefore
// never see a partially synthesized capability set, and any failure
// leaves the prior attributes intact.
package printer
