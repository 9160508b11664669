// The font subpackage offers helper functions for parsing font files
// into [sfnt.Font] handles and querying their properties. The parent
// typefaces package uses it for handle construction and diagnostics,
// but the helpers are also usable on their own.
package font
