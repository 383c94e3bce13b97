// This file is part of Saroo.
//
// Saroo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Saroo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Saroo.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The Has() function is similar but checks if a pattern
// occurs somewhere in the error chain:
//
//	e := curated.Errorf("storage: %v", curated.Errorf(storage.PayloadOverrun, 300, 256))
//
//	curated.Has(e, storage.PayloadOverrun) // true
//	curated.Is(e, storage.PayloadOverrun)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of the difference as being 'expected' and
// 'unexpected' depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. Chains are composed of parts separated by the
// sub-string ': '. For example:
//
//	storage: storage: file read
//
// is normalised to
//
//	storage: file read
//
// Curated errors implement Unwrap(). The first error in the list of values is
// the wrapped error, which means that non-curated errors such as the
// peripheral error codes in the storage package can be recovered with
// errors.As().
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented.
package curated
