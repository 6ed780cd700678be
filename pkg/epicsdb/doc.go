// Package epicsdb writes the EPICS database template for a GenICam camera.
//
// Every feature gets a readback record named <record>_RBV and, unless the
// feature is read-only, a demand record named <record>. The record type
// follows the feature type. Links address the asyn port driver as
// GC_<tag>_<Feature>, where the tag (I, B, D, S, E, C) tells the driver which
// GenICam accessor to use.
package epicsdb
