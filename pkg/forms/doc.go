// Package forms builds dialog forms and decodes the client's replies.
//
// Three variants are supported. A CustomForm carries an ordered list of
// controls and expects a reply with one value per control; the reply is
// validated positionally and remapped into a Result keyed by each control's
// output key. A SimpleForm carries a list of buttons and expects the index of
// the pressed button, which decodes to that button's key. A ModalForm carries
// two buttons and expects a boolean.
//
// Forms are built once, serialised with MarshalJSON for the host transport,
// and later fed the client's reply through HandleResponse, which routes the
// decoded value to a Handler supplied by the application.
package forms
